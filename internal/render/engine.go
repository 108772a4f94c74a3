package render

import (
	"strconv"
	"time"

	"github.com/alexisbeaulieu97/prismline/internal/colors"
	"github.com/alexisbeaulieu97/prismline/internal/gitstate"
	"github.com/alexisbeaulieu97/prismline/internal/input"
	"github.com/alexisbeaulieu97/prismline/internal/logger"
	"github.com/alexisbeaulieu97/prismline/internal/theme"
	apperrors "github.com/alexisbeaulieu97/prismline/pkg/errors"
)

// dispatch is swapped in tests to exercise the recovery path.
var dispatch = Render

// Request is everything a render needs from the outside world.
type Request struct {
	ThemeName   string
	AllowHidden bool
	Input       input.RenderInput
	Repo        gitstate.State
	Now         time.Time
	ChipStyle   ChipStyle
	Overrides   colors.Overrides
	Log         *logger.Logger
}

// RenderTheme renders req for its theme name. Names that do not validate get
// the minimal static line.
func RenderTheme(req Request) string {
	if !theme.IsValid(req.ThemeName, req.AllowHidden) {
		req.Log.WithFields(map[string]any{"theme": req.ThemeName}).
			Warn("theme not recognised, using minimal display")
		return Minimal(req.Input)
	}
	return RenderDescriptor(theme.Parse(req.ThemeName), req)
}

// RenderDescriptor renders req with an already parsed descriptor. An unknown
// layout resolves to the card layout. A panic inside a renderer is recovered
// and replaced by the emergency line.
func RenderDescriptor(d theme.Descriptor, req Request) (out string) {
	d.Layout = theme.ResolveLayout(d.Layout)
	if req.Now.IsZero() {
		req.Now = time.Now()
	}

	defer func() {
		if r := recover(); r != nil {
			req.Log.Error(apperrors.NewRenderError(d.Layout.String(), r), "renderer failed, using emergency display")
			out = Emergency(req.Input)
		}
	}()

	ctx := NewContext(d, req.Input, req.Repo, req.Now, req.ChipStyle, req.Overrides)
	return dispatch(ctx)
}

// Minimal is the plain fallback for invalid theme names.
func Minimal(in input.RenderInput) string {
	return "[" + in.Model + "] " + in.Dir + " | " + strconv.Itoa(in.ContextPct) + "%"
}

// Emergency is the bare line used when a renderer fails.
func Emergency(in input.RenderInput) string {
	return in.Model + " | " + strconv.Itoa(in.ContextPct) + "%"
}
