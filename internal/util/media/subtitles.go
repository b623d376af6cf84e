package media

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"recode/internal/util"
)

// SubtitlePatterns are the sidecar suffixes moved along with a transcode,
// appended to the video path without its extension.
var SubtitlePatterns = []string{".srt", ".en.srt", "-en.srt", ".heb.srt", ".sub"}

// RelocateSubtitles renames every existing sidecar of input so it sits next
// to output under output's base name. Each pattern is handled independently;
// failures are logged and returned but never stop the remaining patterns.
func RelocateSubtitles(input, output string, logger *zap.Logger) (moved []string, errs []error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	srcBase := util.StripExt(input)
	dstBase := util.StripExt(output)

	for _, ext := range SubtitlePatterns {
		src := srcBase + ext
		dst := dstBase + ext
		if !util.Exists(src) {
			continue
		}
		if err := os.Rename(src, dst); err != nil {
			logger.Error("rename subtitle failed", zap.String("from", src), zap.String("to", dst), zap.Error(err))
			errs = append(errs, fmt.Errorf("rename subtitle %s: %w", src, err))
			continue
		}
		logger.Info("renamed subtitle", zap.String("from", src), zap.String("to", dst))
		moved = append(moved, dst)
	}
	return moved, errs
}
