package asciigrid

import "fmt"

/*
ConfigError reports a run configuration that the converter refuses to
work with: a character set below the minimum size, a resolution outside
the valid partition range, or an unknown rounding method. It is detected
before any pixel work begins and is fatal only to the current conversion,
never to the session.
*/
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

/*
ImageError reports a source image that could not be opened or decoded.
The underlying decoder error is preserved and available via Unwrap.
*/
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("image %s: %v", e.Path, e.Err)
	}
	return "image: " + e.Err.Error()
}

func (e *ImageError) Unwrap() error { return e.Err }

/*
InvariantError reports a dimension mismatch between the padded image and
the requested resolution. It is unreachable through Convert, which only
accepts resolutions the partitioner can honor; seeing one means a
programming defect, not bad user input.
*/
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return "internal invariant violated: " + e.Reason
}
