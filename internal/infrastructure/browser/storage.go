//go:build js && wasm

package browser

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/domain/repository"
)

// ErrStorageUnavailable is returned when the page has no usable localStorage.
var ErrStorageUnavailable = errors.New("localStorage unavailable")

// LocalStorage implements repository.PreferenceRepository over
// window.localStorage. Browsers throw on access in sandboxed frames and
// when storage is disabled; those exceptions come back as errors.
type LocalStorage struct{}

// NewLocalStorage returns a repository backed by window.localStorage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

// Get implements repository.PreferenceRepository.
func (s *LocalStorage) Get(_ context.Context, key string) (*entity.StoredPreference, error) {
	var value js.Value
	err := guard(func(storage js.Value) {
		value = storage.Call("getItem", key)
	})
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	if value.IsNull() || value.IsUndefined() {
		return nil, nil
	}
	return &entity.StoredPreference{Key: key, Value: value.String()}, nil
}

// Set implements repository.PreferenceRepository.
func (s *LocalStorage) Set(_ context.Context, pref *entity.StoredPreference) error {
	err := guard(func(storage js.Value) {
		storage.Call("setItem", pref.Key, pref.Value)
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", pref.Key, err)
	}
	return nil
}

// guard runs fn against window.localStorage, converting thrown JS
// exceptions into errors.
func guard(fn func(storage js.Value)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = fmt.Errorf("%w: %s", ErrStorageUnavailable, jsErr.Error())
				return
			}
			err = fmt.Errorf("%w: %v", ErrStorageUnavailable, r)
		}
	}()

	storage := js.Global().Get("localStorage")
	if !storage.Truthy() {
		return ErrStorageUnavailable
	}
	fn(storage)
	return nil
}

var _ repository.PreferenceRepository = (*LocalStorage)(nil)
