package device

import (
	"fmt"

	"oopdemo/pkg/engine/console"
)

const (
	// SmoothRAMGB is the RAM from which software runs without warnings.
	SmoothRAMGB = 8

	// fileCost is the rough per-file cost weighed against storageGB*1024.
	fileCost = 100
)

// Laptop is a Device that runs software and stores files.
type Laptop struct {
	*Device

	RAMGB     int
	StorageGB int

	files []string
}

// NewLaptop creates a switched-off laptop
func NewLaptop(n console.Narrator, s Spec, ramGB, storageGB int) *Laptop {
	return &Laptop{
		Device:    NewDevice(n, s),
		RAMGB:     ramGB,
		StorageGB: storageGB,
	}
}

// Kind returns "Laptop"
func (l *Laptop) Kind() string {
	return "Laptop"
}

// RunSoftware runs name, warning when RAM is below SmoothRAMGB
func (l *Laptop) RunSoftware(name string) error {
	if err := l.requirePower("LAPTOP_RUN_DENIED"); err != nil {
		return err
	}
	if l.RAMGB >= SmoothRAMGB {
		l.say("LAPTOP_RUN_SMOOTH", name, l.Model)
	} else {
		l.say("LAPTOP_RUN_SLOW", name)
	}
	return nil
}

// HasRoom reports whether one more file fits. The accounting is coarse:
// every file costs fileCost against a capacity of StorageGB*1024.
func (l *Laptop) HasRoom() bool {
	return len(l.files)*fileCost < l.StorageGB*1024
}

// SaveFile stores filename if there is room
func (l *Laptop) SaveFile(filename string) error {
	if err := l.requirePower("LAPTOP_SAVE_DENIED"); err != nil {
		return err
	}
	if !l.HasRoom() {
		l.say("LAPTOP_STORAGE_FULL")
		return ErrStorageFull
	}
	l.files = append(l.files, filename)
	l.say("LAPTOP_FILE_SAVED", filename)
	return nil
}

// Files returns a copy of the saved file names in save order
func (l *Laptop) Files() []string {
	return append([]string(nil), l.files...)
}

// Info extends the device summary with RAM and storage
func (l *Laptop) Info() string {
	return fmt.Sprintf("%s - RAM: %dGB - Storage: %dGB", l.Device.Info(), l.RAMGB, l.StorageGB)
}
