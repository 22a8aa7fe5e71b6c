package easel

import (
	"github.com/gopaint/easel/imageio"
)

// LoadResult is the outcome of an asynchronous image decode started by
// BeginLoad.
type LoadResult struct {
	// Gen identifies which BeginLoad call produced this result.
	Gen uint64

	// Img is the decoded image; nil when Err is set.
	Img *PixBuf

	// Err is the decode error, if any.
	Err error
}

// LoadBytes decodes an encoded image synchronously and replaces the
// canvas with it. Supported formats are those of the imageio package.
func (s *Surface) LoadBytes(data []byte) error {
	img, err := imageio.Decode(data)
	if err != nil {
		return err
	}
	s.LoadImage(img)
	return nil
}

// BeginLoad starts decoding an encoded image off the owner goroutine and
// returns the generation of this load plus a channel delivering its
// result. Each BeginLoad supersedes every earlier one: pass the result to
// CompleteLoad, which rejects results from superseded loads, so two
// overlapping loads can never finish out of order.
//
// Decoding runs on its own goroutine; everything else, including
// CompleteLoad, stays on the owner goroutine.
func (s *Surface) BeginLoad(data []byte) (uint64, <-chan LoadResult) {
	s.loadGen++
	gen := s.loadGen
	ch := make(chan LoadResult, 1)
	go func() {
		img, err := imageio.Decode(data)
		if err != nil {
			ch <- LoadResult{Gen: gen, Err: err}
			return
		}
		ch <- LoadResult{Gen: gen, Img: FromImage(img)}
	}()
	return gen, ch
}

// CompleteLoad applies a finished asynchronous load. Results from a load
// that a newer BeginLoad superseded are rejected with ErrStaleLoad, and
// decode failures are returned as-is; in both cases the canvas is left
// untouched.
func (s *Surface) CompleteLoad(res LoadResult) error {
	if res.Gen != s.loadGen {
		Logger().Debug("stale load dropped", "gen", res.Gen, "current", s.loadGen)
		return ErrStaleLoad
	}
	if res.Err != nil {
		return res.Err
	}
	s.pix = res.Img
	s.abandonStroke()
	s.history.Reset()
	s.resetMatrices()
	s.dirty = true
	Logger().Info("image loaded", "width", s.pix.Width(), "height", s.pix.Height())
	return nil
}
