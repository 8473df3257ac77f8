//go:build ebiten && (js || (!windows && !cgo))

package app

func initClipboard() {
	InfoLogger.Print("clipboard is disabled in this build")
}

func clipboardWriteText(string) bool { return false }

func clipboardReadText() string { return "" }
