package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ezerfernandes/mdcallout/internal/cmd"
)

func main() {
	cmd.Execute(os.Args[1:], os.Stdout, os.Stderr)
}
