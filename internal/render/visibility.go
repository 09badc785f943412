package render

// DimmedOpacity is shown while the pointer hovers a locked overlay.
const DimmedOpacity = 0.2

type VisibilityInput struct {
	HideWhenPaused bool
	IsPlaying      bool
	HasTrack       bool
	Stale          bool
	IsLocked       bool
	Hovering       bool
}

// Opacity applies the visibility rules in priority order; the first match
// wins.
func Opacity(in VisibilityInput) float64 {
	if in.HideWhenPaused && !in.IsPlaying && in.HasTrack {
		return 0
	}
	if in.Stale {
		return 0
	}
	if in.IsLocked && in.Hovering {
		return DimmedOpacity
	}
	return 1
}
