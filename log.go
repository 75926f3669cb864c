package kitkat

import (
	logxi "github.com/mgutz/logxi/v1"

	"github.com/32bitkid/kitkat/screen"
)

var logger = logxi.New("kitkat")

// SetLogLevel sets the level of the widget and rasterizer loggers, for
// example logxi.LevelDebug. LOGXI environment variables still apply to
// anything not set here.
func SetLogLevel(level int) {
	logger.SetLevel(level)
	screen.SetLogLevel(level)
}
