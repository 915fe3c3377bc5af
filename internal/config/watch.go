package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher перечитывает файл конфигурации при внешних изменениях.
type Watcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
}

// Watch начинает следить за файлом конфигурации.
// Следим за каталогом, чтобы не потерять файл при атомарной замене редактором.
func (c *Config) Watch() (*Watcher, error) {
	if c.configPath == "" {
		return nil, errors.New("config: путь к файлу не задан")
	}

	dir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{fw: fw, done: make(chan struct{})}
	go w.loop(c)
	return w, nil
}

func (w *Watcher) loop(c *Config) {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != c.configPath {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				c.reload()
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("Ошибка наблюдения за конфигурацией: %v", err)
		}
	}
}

// Close останавливает наблюдение.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}

// reload перечитывает файл и уведомляет подписчиков.
// Собственные записи распознаются по совпадению содержимого. Файл читается
// под c.mu, чтобы не застать наполовину записанный save.
func (c *Config) reload() {
	c.mu.Lock()
	data, err := c.read()
	if err != nil {
		c.mu.Unlock()
		return
	}
	if len(data) == 0 || string(data) == string(c.lastSaved) {
		c.mu.Unlock()
		return
	}
	if !c.apply(data) {
		c.mu.Unlock()
		log.Printf("Конфигурация %s повреждена, изменения пропущены", c.configPath)
		return
	}
	callbacks := append([]func(){}, c.onChange...)
	c.mu.Unlock()

	log.Printf("Конфигурация перечитана: %s", c.configPath)
	for _, fn := range callbacks {
		fn()
	}
}
