package main

import "gconsole/internal/cli"

func main() {
    cli.Execute()
}
