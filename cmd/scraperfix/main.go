package main

import "scraperfix/cmd/scraperfix/cmd"

func main() {
	cmd.Execute()
}
