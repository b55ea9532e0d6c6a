// Package audio plays synthesized sound cues through beep's speaker.
package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/crypt/internal/domain/entity"
	"github.com/younwookim/crypt/internal/infrastructure/config"
)

// Player queues cues on a bounded channel and mixes them on its own goroutine.
// Play never blocks: a full queue drops the cue.
type Player struct {
	queue   chan entity.Sound
	sink    func(beep.Streamer)
	rate    beep.SampleRate
	volume  atomic.Uint64 // math.Float64bits
	dropped atomic.Int64
	log     logrus.FieldLogger

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New initializes the speaker and starts the mixing goroutine
func New(cfg config.AudioConfig, log logrus.FieldLogger) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	p := newPlayer(cfg, log, func(s beep.Streamer) {
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
	})
	p.start()
	return p, nil
}

func newPlayer(cfg config.AudioConfig, log logrus.FieldLogger, sink func(beep.Streamer)) *Player {
	size := cfg.QueueSize
	if size <= 0 {
		size = 1
	}
	p := &Player{
		queue: make(chan entity.Sound, size),
		sink:  sink,
		rate:  beep.SampleRate(cfg.SampleRate),
		log:   log,
	}
	p.SetVolume(cfg.Volume)
	return p
}

func (p *Player) start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for s := range p.queue {
			st := Synthesize(s, p.rate, p.Volume())
			if st == nil {
				continue
			}
			p.sink(st)
		}
	}()
}

// Play enqueues a cue without waiting
func (p *Player) Play(s entity.Sound) {
	select {
	case p.queue <- s:
	default:
		if p.dropped.Add(1)%64 == 1 {
			p.log.WithField("sound", s.String()).Debug("audio queue full, dropping cue")
		}
	}
}

// SetVolume sets the playback volume, clamped to 0..1
func (p *Player) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.volume.Store(math.Float64bits(v))
}

// Volume returns the playback volume
func (p *Player) Volume() float64 {
	return math.Float64frombits(p.volume.Load())
}

// Dropped returns how many cues were discarded on a full queue
func (p *Player) Dropped() int64 {
	return p.dropped.Load()
}

// Close stops the mixing goroutine. Cues played after Close are not allowed.
func (p *Player) Close() {
	p.stopOnce.Do(func() {
		close(p.queue)
		p.wg.Wait()
	})
}

// Nop discards every cue. Used when audio is disabled or unavailable.
type Nop struct{}

func (Nop) Play(entity.Sound) {}
