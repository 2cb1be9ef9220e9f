package model

import "errors"

var (
	// ErrEmptyName is returned when an item is created without a name.
	ErrEmptyName = errors.New("item name is empty")
	// ErrIndexOutOfRange is returned for 1-based indexes outside the inventory.
	ErrIndexOutOfRange = errors.New("index out of range")
)
