// Package diag queries platform counters and assembles diagnostic snapshots.
package diag

import (
	"boardcode-go/errcode"
	"boardcode-go/types"
	"boardcode-go/x/timex"
)

// Source is the read-only counter surface a board family exposes.
// CPU frequency and free memory exist on every supported board. The other
// accessors are opportunistic: a board without the counter returns
// errcode.Unsupported, which is an absence, not a failure. Any other error
// is a genuine fault and propagates.
type Source interface {
	CPUFrequencyHz() (uint64, error)
	FreeMemoryBytes() (uint64, error)

	TemperatureMilliC() (int32, error)
	FlashSizeBytes() (uint64, error)
	BoardID() (string, error)
}

// Reporter binds a counter source to a fixed platform label.
// Stateless: every Snapshot is a fresh query, no caching, no retry.
type Reporter struct {
	src      Source
	platform string
}

func New(src Source, platform string) (*Reporter, error) {
	if src == nil || platform == "" {
		return nil, errcode.InvalidParams
	}
	return &Reporter{src: src, platform: platform}, nil
}

// Snapshot reads all counters. Mandatory reads fail the whole call; optional
// counters degrade to absence when the board reports errcode.Unsupported.
// On failure no partial snapshot is returned.
func (r *Reporter) Snapshot() (types.DiagSnapshot, error) {
	s := types.DiagSnapshot{
		Platform: r.platform,
		BoardID:  types.BoardIDUnknown,
	}

	hz, err := r.src.CPUFrequencyHz()
	if err != nil {
		return types.DiagSnapshot{}, err
	}
	s.CPUFrequencyHz = hz

	free, err := r.src.FreeMemoryBytes()
	if err != nil {
		return types.DiagSnapshot{}, err
	}
	s.FreeMemoryBytes = free

	if t, err := r.src.TemperatureMilliC(); err == nil {
		v := t
		s.TemperatureMilliC = &v
	} else if errcode.Of(err) != errcode.Unsupported {
		return types.DiagSnapshot{}, err
	}

	if fs, err := r.src.FlashSizeBytes(); err == nil {
		v := fs
		s.FlashSizeBytes = &v
	} else if errcode.Of(err) != errcode.Unsupported {
		return types.DiagSnapshot{}, err
	}

	if id, err := r.src.BoardID(); err == nil {
		s.BoardID = id
	} else if errcode.Of(err) != errcode.Unsupported {
		return types.DiagSnapshot{}, err
	}

	s.TS = timex.NowMs()
	return s, nil
}
