package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadParams parses key=value lines. Blank lines and lines starting with '#'
// are skipped; a later line overrides an earlier one.
func ReadParams(r io.Reader) (map[string]string, error) {
	out := map[string]string{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, val, ok := strings.Cut(text, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("line %d: expected key=value, got %q", line, text)
		}
		out[key] = strings.TrimSpace(val)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadConfig reads a parameter file and builds a Config from it with FromMap,
// so unparsable values keep their defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("open params: %w", err)
	}
	defer f.Close()
	kv, err := ReadParams(f)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read %s: %w", path, err)
	}
	return FromMap(kv), nil
}

// Resolve layers command-line settings over a base config: the parameter file
// when paramsFile is set, else DefaultConfig. Positive width and height replace
// the canvas size, fit can only switch fitting on, and overrides apply last.
func Resolve(paramsFile string, width, height int, fit bool, overrides Overrides) (Config, error) {
	cfg := DefaultConfig()
	if paramsFile != "" {
		loaded, err := LoadConfig(paramsFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if width < 0 || height < 0 {
		return cfg, fmt.Errorf("canvas must not be negative, got %dx%d", width, height)
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	cfg.Fit = cfg.Fit || fit
	if err := overrides.Apply(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
