package app

import (
	"log"
	"os"
)

var (
	ErrorLogger = log.New(os.Stderr, "[ FAIL ]: ", log.Lshortfile)
	InfoLogger  = log.New(os.Stdout, "[ INFO ]: ", log.Lshortfile)
)
