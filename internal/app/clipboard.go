// golang.design/x/clipboard panics instead of failing Init on targets
// without a native clipboard, so those builds use clipboard_stub.go.

//go:build ebiten && !js && (windows || cgo)

package app

import (
	"unicode/utf8"

	"golang.design/x/clipboard"
)

var clipboardReady bool

func initClipboard() {
	if err := clipboard.Init(); err != nil {
		ErrorLogger.Printf("clipboard unavailable: %v", err)
		return
	}
	clipboardReady = true
}

func clipboardWriteText(s string) bool {
	if !clipboardReady {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return true
}

func clipboardReadText() string {
	if !clipboardReady {
		return ""
	}
	b := clipboard.Read(clipboard.FmtText)
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}
