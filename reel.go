package main

import (
	"log"
	"slices"
	"sync"
)

// FrameStore owns the reel. It always holds at least one frame and the tail
// is the frame open for editing. Every mutation publishes a fresh Reel.
type FrameStore struct {
	mu     sync.RWMutex
	frames Reel
	out    *broadcaster[Reel]
}

func NewFrameStore() *FrameStore {
	frames := Reel{NewFrame()}
	return &FrameStore{
		frames: frames,
		out:    newBroadcaster(slices.Clone(frames)),
	}
}

// ObserveReel streams reel snapshots, starting with the current one.
func (fs *FrameStore) ObserveReel() (<-chan Reel, func()) {
	return fs.out.Subscribe()
}

func (fs *FrameStore) Reel() Reel {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return slices.Clone(fs.frames)
}

func (fs *FrameStore) Tail() Frame {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.frames.Tail()
}

func (fs *FrameStore) Len() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.frames)
}

// ReplaceTail commits edits to the working frame.
func (fs *FrameStore) ReplaceTail(frame Frame) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.frames[len(fs.frames)-1] = frame
	fs.publishLocked()
}

// AppendFrame stores frame as the tail and opens a new blank tail after it.
func (fs *FrameStore) AppendFrame(frame Frame) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if n := len(fs.frames); n >= 2 && fs.frames[n-2].Equal(frame) {
		log.Printf("[reel] frame %s repeats the previous frame", short(frame.ID.String()))
	}
	fs.frames[len(fs.frames)-1] = frame
	fs.frames = append(fs.frames, NewFrame())
	log.Printf("[reel] appended frame, length %d", len(fs.frames))
	fs.publishLocked()
}

// DuplicateFrame appends a copy of the tail as the new tail.
func (fs *FrameStore) DuplicateFrame() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.frames = append(fs.frames, fs.frames.Tail().Copy())
	log.Printf("[reel] duplicated tail, length %d", len(fs.frames))
	fs.publishLocked()
}

// DeleteFrame removes the tail, reseeding a blank frame if the reel empties.
func (fs *FrameStore) DeleteFrame() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if len(fs.frames) > 0 {
		fs.frames = fs.frames[:len(fs.frames)-1]
	}
	if len(fs.frames) == 0 {
		fs.frames = Reel{NewFrame()}
	}
	log.Printf("[reel] deleted tail, length %d", len(fs.frames))
	fs.publishLocked()
}

func (fs *FrameStore) DeleteAllFrames() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.frames = Reel{NewFrame()}
	log.Printf("[reel] cleared")
	fs.publishLocked()
}

func (fs *FrameStore) Close() {
	fs.out.Close()
}

func (fs *FrameStore) publishLocked() {
	// Frames are values, so a shallow clone of the slice is a full snapshot.
	fs.out.Publish(slices.Clone(fs.frames))
}
