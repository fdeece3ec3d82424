// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultHotkey - сочетание клавиш по умолчанию.
const DefaultHotkey = "ctrl+shift+q"

// FileName - имя файла конфигурации рядом с бинарником.
const FileName = "config.json"

// configData структура для сериализации.
type configData struct {
	Hotkey string `json:"hotkey"`
}

// Config хранит настройки приложения.
type Config struct {
	mu             sync.RWMutex
	hotkey         string
	configPath     string
	onHotkeyChange func(string)
	watcher        *fsnotify.Watcher
}

// New создаёт конфигурацию, загружая из файла или с настройками по умолчанию.
func New() *Config {
	c := &Config{hotkey: DefaultHotkey}

	// Определяем путь к файлу конфигурации рядом с бинарником
	execPath, err := os.Executable()
	if err == nil {
		// Резолвим симлинки
		execPath, err = filepath.EvalSymlinks(execPath)
		if err == nil {
			c.configPath = filepath.Join(filepath.Dir(execPath), FileName)
		}
	}

	c.load()

	return c
}

// load загружает конфигурацию из файла. При первом запуске файла ещё
// нет - тогда сразу сохраняются значения по умолчанию.
func (c *Config) load() {
	if c.configPath == "" {
		return
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			c.save()
		}
		return
	}

	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Конфигурация не читается, работаем со значениями по умолчанию: %v", err)
		return
	}
	if cfg.Hotkey != "" {
		c.hotkey = cfg.Hotkey
	}
}

// save сохраняет конфигурацию в файл.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	data, err := json.MarshalIndent(configData{Hotkey: c.hotkey}, "", "  ")
	if err != nil {
		return
	}

	os.WriteFile(c.configPath, data, 0644)
}

// Hotkey возвращает сохранённое сочетание клавиш.
func (c *Config) Hotkey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hotkey
}

// SetHotkey сохраняет сочетание клавиш. Повторная запись того же
// значения ничего не делает. Callback OnHotkeyChange здесь не
// вызывается: SetHotkey фиксирует уже применённое сочетание, а
// callback предназначен для изменений, пришедших извне.
func (c *Config) SetHotkey(hk string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hk == c.hotkey {
		return
	}
	c.hotkey = hk
	c.save()
}

// OnHotkeyChange устанавливает callback на смену сочетания извне -
// через правку файла конфигурации.
func (c *Config) OnHotkeyChange(fn func(string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onHotkeyChange = fn
}

// Watch следит за файлом конфигурации: правка файла снаружи применяет
// новое сочетание без перезапуска приложения.
func (c *Config) Watch() error {
	if c.configPath == "" {
		return errors.New("путь к файлу конфигурации неизвестен")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("создание наблюдателя: %w", err)
	}

	// Следим за каталогом: редакторы часто пересоздают файл
	if err := watcher.Add(filepath.Dir(c.configPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("наблюдение за каталогом: %w", err)
	}

	c.mu.Lock()
	c.watcher = watcher
	c.mu.Unlock()

	go c.watchLoop(watcher)
	return nil
}

func (c *Config) watchLoop(watcher *fsnotify.Watcher) {
	var debounce *time.Timer
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(c.configPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Debounce: редакторы пишут файл в несколько приёмов
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, c.reload)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Ошибка наблюдателя конфигурации: %v", err)
		}
	}
}

// reload перечитывает файл и применяет изменившееся сочетание.
func (c *Config) reload() {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return
	}
	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Изменённая конфигурация не читается: %v", err)
		return
	}
	if cfg.Hotkey == "" {
		return
	}

	c.mu.Lock()
	if cfg.Hotkey == c.hotkey {
		// Собственная запись или правка без изменения
		c.mu.Unlock()
		return
	}
	c.hotkey = cfg.Hotkey
	callback := c.onHotkeyChange
	c.mu.Unlock()

	log.Printf("Конфигурация изменена снаружи, новое сочетание: %s", cfg.Hotkey)
	if callback != nil {
		callback(cfg.Hotkey)
	}
}

// Close останавливает наблюдение за файлом конфигурации.
func (c *Config) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher != nil {
		c.watcher.Close()
		c.watcher = nil
	}
}
