package game

import (
	"github.com/sirupsen/logrus"
	"github.com/younwookim/crypt/internal/application/system"
	"github.com/younwookim/crypt/internal/infrastructure/logger"
)

// VolumeControl is implemented by sound players with an adjustable output level
type VolumeControl interface {
	SetVolume(v float64)
	Volume() float64
}

// Context carries the application-wide collaborators handed to scenes
type Context struct {
	Sound  system.SoundPlayer
	Volume float64 // 0..1
	Log    logrus.FieldLogger
}

// NewContext fills in silent and discarding defaults for nil collaborators
func NewContext(sound system.SoundPlayer, volume float64, log logrus.FieldLogger) *Context {
	if sound == nil {
		sound = system.Silent{}
	}
	if log == nil {
		log = logger.Discard()
	}
	c := &Context{Sound: sound, Log: log}
	c.SetVolume(volume)
	return c
}

// SetVolume clamps v to 0..1 and forwards it to the sound player when it supports volume
func (c *Context) SetVolume(v float64) {
	v = min(max(v, 0), 1)
	c.Volume = v
	if vc, ok := c.Sound.(VolumeControl); ok {
		vc.SetVolume(v)
	}
}

// AdjustVolume changes the volume by delta
func (c *Context) AdjustVolume(delta float64) {
	c.SetVolume(c.Volume + delta)
	c.Log.WithField("volume", c.Volume).Debug("volume changed")
}
