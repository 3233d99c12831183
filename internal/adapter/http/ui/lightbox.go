package ui

// Keys understood by the gallery viewer.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Lightbox is the full-size viewer over a fixed image list. Navigation wraps around.
type Lightbox struct {
	count int
	index int
	open  bool
}

func NewLightbox(count int) *Lightbox {
	if count < 0 {
		count = 0
	}
	return &Lightbox{count: count}
}

// Open shows image i. Out-of-range indexes wrap; an empty gallery never opens.
func (l *Lightbox) Open(i int) {
	if l.count == 0 {
		return
	}
	l.index = wrap(i, l.count)
	l.open = true
}

func (l *Lightbox) Close() { l.open = false }

func (l *Lightbox) Next() {
	if l.open {
		l.index = wrap(l.index+1, l.count)
	}
}

func (l *Lightbox) Prev() {
	if l.open {
		l.index = wrap(l.index-1, l.count)
	}
}

// HandleKey applies a keyboard key and reports whether it was one the viewer uses.
func (l *Lightbox) HandleKey(key string) bool {
	if !l.open {
		return false
	}
	switch key {
	case KeyEscape:
		l.Close()
	case KeyArrowLeft:
		l.Prev()
	case KeyArrowRight:
		l.Next()
	default:
		return false
	}
	return true
}

func (l *Lightbox) IsOpen() bool { return l.open }

func (l *Lightbox) Index() int { return l.index }

func (l *Lightbox) Count() int { return l.count }

func (l *Lightbox) NextIndex() int { return wrap(l.index+1, l.count) }

func (l *Lightbox) PrevIndex() int { return wrap(l.index-1, l.count) }

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
