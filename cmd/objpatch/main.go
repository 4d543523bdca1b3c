package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/scott-cotton/cli"

	"github.com/signadot/objpatch/debug"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		theLog.Error("loading .env", "error", err)
		os.Exit(2)
	}
	debug.Reload()
	cli.MainContext(context.Background(), MainCommand())
}
