package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/workbench/internal/logging"
)

// Watch reloads the config file whenever it changes on disk, so long-running
// commands (the picker) follow edits to window.open_folders_in_new_window.
// An edit that fails validation is logged and the previous configuration stays.
// Reload events are logged through the logger carried by ctx.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.viper.ConfigFileUsed() == "" {
		return errors.New("config not loaded")
	}

	log := logging.FromContext(logging.WithComponent(ctx, "config"))

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

		m.mu.Lock()
		if m.skipNextReload {
			// Our own Set already holds the new values.
			m.skipNextReload = false
			if err := m.viper.ReadInConfig(); err != nil {
				log.Warn().Err(err).Msg("re-reading saved config failed")
			}
		} else if err := m.reloadLocked(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("ignoring invalid config edit")
			return
		}
		m.notifyAndUnlock()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers fn to receive a copy of every reloaded configuration.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, fn)
}

// notifyAndUnlock snapshots state under the write lock, releases it, then
// runs the callbacks so they may call back into the manager.
func (m *Manager) notifyAndUnlock() {
	snapshot := m.config.clone()
	callbacks := append(([]func(*Config))(nil), m.callbacks...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(snapshot)
	}
}

func (m *Manager) reloadLocked() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	config, err := m.unmarshalConfig(m.viper)
	if err != nil {
		return err
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = config
	return nil
}
