package ui

type maskProvider interface {
	ScoreMask() []uint8
	SaturationMask() []uint8
}

type mask uint8

const (
	maskScore mask = iota
	maskSaturation
)

type overlayState struct {
	showScore      bool
	showSaturation bool
}

func (s *overlayState) toggle(m mask) {
	switch m {
	case maskScore:
		s.showScore = !s.showScore
	case maskSaturation:
		s.showSaturation = !s.showSaturation
	}
}
