package read

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ib-77/rio/pkg/rio"
)

// OpenFile opens a line reader over a local file. The factory is
// total: a missing file, a permission problem or any other open error
// comes back as a failure, never as a panic.
func OpenFile(path string, opts ...Option) rio.Result[*LineReader] {
	o := newOptions(opts...)

	f, err := os.Open(path)
	if err != nil {
		o.logger.Warn("open file failed", zap.String("path", path), zap.Error(err))
		return rio.Fail[*LineReader](fmt.Errorf("open %s: %w", path, err))
	}

	o.logger.Debug("file opened", zap.String("path", path))
	return rio.Success(newLineReader(f, f, o))
}
