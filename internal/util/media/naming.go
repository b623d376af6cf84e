package media

import (
	"path/filepath"

	"recode/internal/model"
	"recode/internal/util"
)

// OutputExt is the container extension of every output file.
const OutputExt = ".mp4"

// surroundSource is the tag replaced by model.SurroundSuffix in surround mode.
const surroundSource = "AAC5.1"

// OutputPath computes where the transcode of input is written.
//
// target may be empty, a nonexistent path, an existing file or an existing
// directory. An existing file is used as the naming base; a directory
// receives the input's base name; anything else names the output after the
// input itself. The result always ends in OutputExt and, since suffix is
// never empty, never equals input.
func OutputPath(input, target, suffix string) string {
	candidate := input
	switch {
	case util.IsFile(target):
		candidate = target
	case util.IsDir(target):
		candidate = filepath.Join(target, filepath.Base(input))
	}

	if suffix == model.SurroundSuffix {
		if out, ok := rewriteSurround(candidate); ok {
			return out
		}
	}
	return util.StripExt(candidate) + suffix + OutputExt
}

// rewriteSurround truncates name at the first case-insensitive occurrence of
// "AAC5.1" and appends "AAC2.1.mp4". ok is false when the tag is absent.
func rewriteSurround(name string) (string, bool) {
	i := indexFoldASCII(name, surroundSource)
	if i < 0 {
		return "", false
	}
	return name[:i] + model.SurroundSuffix + OutputExt, true
}

// indexFoldASCII is strings.Index with ASCII case folding. Byte offsets in
// s are preserved, unlike searching a lower-cased copy.
func indexFoldASCII(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		match := true
		for j := 0; j < n; j++ {
			if toLowerASCII(s[i+j]) != toLowerASCII(substr[j]) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
