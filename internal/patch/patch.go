package patch

import (
	"regexp"

	"scraperfix/internal/rewrite"
)

// TargetFile is the one file this tool rewrites, relative to the working
// directory. There is deliberately no way to point it elsewhere.
const TargetFile = "src/ImageScraper.ts"

// methodPattern matches the downloadImage signature followed by a
// brace-delimited body. It is a surface-syntax approximation, not a parser:
// under leftmost-first matching the greedy [^}]* swallows any nested opening
// braces and the match ends at the first closing brace after the signature,
// so a body containing nested blocks is truncated at the wrong brace.
var methodPattern = regexp.MustCompile(`async downloadImage\(imageData: ImageData, filename: string\): Promise<boolean> \{[^}]*(?:\{[^}]*\}[^}]*)*\}`)

// Template is the replacement downloadImage implementation. It is substituted
// literally, byte for byte, for whatever the pattern matched.
const Template = `  async downloadImage(imageData: ImageData, filename: string): Promise<boolean> {
    try {
      const response = await fetch(imageData.url, {
        method: 'GET',
        headers: {
          'User-Agent': this.config.userAgent,
          'Referer': 'https://www.google.com/',
          'Accept': 'image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8'
        }
      });

      if (!response.ok) {
        this.logger.warn(` + "`" + `Failed to download image: HTTP ${response.status} for ${imageData.url}` + "`" + `);
        return false;
      }

      const buffer = Buffer.from(await response.arrayBuffer());
      const filePath = path.join(this.config.outputDir, filename);
      await fs.promises.writeFile(filePath, buffer);
      
      this.logger.debug(` + "`" + `Downloaded image: ${filename}` + "`" + `);
      return true;
      
    } catch (error) {
      this.logger.error(` + "`" + `Failed to download image ${imageData.url}:` + "`" + `, error);
      return false;
    }
  }`

// Result describes the outcome of applying the patch to a buffer.
type Result struct {
	Replaced bool         // whether a matching span was found and replaced
	Span     rewrite.Span // the byte range of the original content that was replaced
	Content  []byte       // the resulting content (equal to the input when Replaced is false)
}

// Apply replaces the first occurrence of the downloadImage method in content
// with Template. If the pattern matches more than once, only the first
// occurrence is touched. If it matches nowhere, the content is returned
// unchanged and Replaced is false.
func Apply(content []byte) Result {
	loc := methodPattern.FindIndex(content)
	if loc == nil {
		return Result{Content: content}
	}
	span := rewrite.Span{Start: loc[0], End: loc[1]}
	return Result{
		Replaced: true,
		Span:     span,
		Content:  rewrite.Splice(content, span, []byte(Template)),
	}
}
