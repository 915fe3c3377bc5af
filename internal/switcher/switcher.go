// Package switcher связывает поток событий клавиатуры с переключением раскладки.
package switcher

import (
	"errors"
	"log"
	"sync"

	"inputtoggle/internal/chord"
	"inputtoggle/internal/inputsource"
)

// Switcher ставит сработавшие аккорды в очередь и выполняет переключение.
// HandleEvent вызывается в потоке перехвата и не должен блокироваться,
// поэтому переключение выполняет отдельная горутина Run.
type Switcher struct {
	matcher  *chord.Matcher
	toggler  *inputsource.Toggler
	requests chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New создаёт Switcher поверх matcher и toggler.
func New(m *chord.Matcher, t *inputsource.Toggler) *Switcher {
	return &Switcher{
		matcher:  m,
		toggler:  t,
		requests: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// HandleEvent прогоняет событие через matcher.
func (s *Switcher) HandleEvent(ev chord.Event) {
	if s.matcher.Handle(ev) {
		s.Request()
	}
}

// Request ставит переключение в очередь. Если одно уже ждёт, новое
// отбрасывается: два переключения подряд вернули бы исходную раскладку.
func (s *Switcher) Request() {
	select {
	case s.requests <- struct{}{}:
	default:
	}
}

// Run выполняет запросы до вызова Stop.
func (s *Switcher) Run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.requests:
			s.toggle()
		}
	}
}

// Stop останавливает Run.
func (s *Switcher) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *Switcher) toggle() {
	src, err := s.toggler.Toggle()
	switch {
	case err == nil:
		log.Printf("Switched to: %s", src)
	case errors.Is(err, inputsource.ErrNoSourcesAvailable):
		log.Printf("Переключение пропущено: %v", err)
	case errors.Is(err, inputsource.ErrActivationRejected):
		log.Printf("Система отклонила переключение: %v", err)
	default:
		log.Printf("Ошибка переключения раскладки: %v", err)
	}
}
