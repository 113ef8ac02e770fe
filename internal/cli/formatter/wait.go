package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Waiting is a one-line "still working" indicator for a blocking call,
// such as asking the model for nudges. It borrows the bubbles MiniDot
// frames but draws straight to w, so no tea.Program has to own the
// terminal while the call runs.
type Waiting struct {
	w      io.Writer
	label  string
	frames spinner.Spinner
	start  time.Time

	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// ShowWaiting draws the first frame immediately and animates until Stop.
func ShowWaiting(w io.Writer, label string) *Waiting {
	wt := &Waiting{
		w:      w,
		label:  label,
		frames: spinner.MiniDot,
		start:  time.Now(),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go wt.loop()
	return wt
}

func (wt *Waiting) loop() {
	defer close(wt.done)
	ticker := time.NewTicker(wt.frames.FPS)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprint(wt.w, wt.line(i, time.Since(wt.start)))
		select {
		case <-wt.quit:
			fmt.Fprint(wt.w, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// line renders frame i. Elapsed time shows once a whole second has passed.
func (wt *Waiting) line(i int, elapsed time.Duration) string {
	frame := wt.frames.Frames[i%len(wt.frames.Frames)]
	text := wt.label
	if s := int(elapsed / time.Second); s > 0 {
		text = fmt.Sprintf("%s %ds", wt.label, s)
	}
	return "\r  " + StylePurple.Render(frame) + " " + Dim(text)
}

// Stop clears the indicator line. Later calls are no-ops.
func (wt *Waiting) Stop() {
	wt.once.Do(func() {
		close(wt.quit)
		<-wt.done
	})
}
