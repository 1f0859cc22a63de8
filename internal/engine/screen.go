//go:build screen

package engine

import "github.com/mohamedayman15069/Agar/internal/core"

// ScreenEnvironment rasterizes the world into a stack of RGB frames.
// Only compiled in when the screen build tag is set; default builds fail
// construction with ErrScreenUnavailable instead.
type ScreenEnvironment struct {
	world  *World
	width  int
	height int

	// frames holds the last ScreenFrames rendered images, oldest first.
	frames [][]uint8
}

// NewScreenEnvironment creates the screen-encoded engine variant with the
// given frame dimensions.
func NewScreenEnvironment(ticksPerStep int, arenaSize float64, pelletRegen bool,
	numPellets, numViruses, numBots int, seed int64, width, height int) (*ScreenEnvironment, error) {

	s := &ScreenEnvironment{
		world:  NewWorld(ticksPerStep, arenaSize, pelletRegen, numPellets, numViruses, numBots, seed),
		width:  width,
		height: height,
	}
	s.capture()
	return s, nil
}

// ObservationShape reports (frames, height, width, color channels).
func (s *ScreenEnvironment) ObservationShape() []int {
	return []int{ScreenFrames, s.height, s.width, PixelChannels}
}

// Reset restarts the episode and clears the frame stack.
func (s *ScreenEnvironment) Reset() {
	s.world.Reset()
	s.frames = nil
	s.capture()
}

// Step advances the world and renders a new frame.
func (s *ScreenEnvironment) Step() float64 {
	reward := s.world.Step()
	s.capture()
	return reward
}

// Done reports episode termination.
func (s *ScreenEnvironment) Done() bool { return s.world.Done() }

// TakeAction forwards the agent's action to the world.
func (s *ScreenEnvironment) TakeAction(x, y float64, d Directive) {
	s.world.TakeAction(x, y, d)
}

// Render draws the world to stdout.
func (s *ScreenEnvironment) Render() { s.world.Render() }

// ArenaSize returns the world extent.
func (s *ScreenEnvironment) ArenaSize() float64 { return s.world.ArenaSize() }

// State returns the stacked frames flattened as
// frames x height x width x channels, oldest frame first. Frames missing
// from a short history are black.
func (s *ScreenEnvironment) State() []uint8 {
	perFrame := s.height * s.width * PixelChannels
	out := make([]uint8, ScreenFrames*perFrame)
	offset := ScreenFrames - len(s.frames)
	for i, f := range s.frames {
		copy(out[(offset+i)*perFrame:], f)
	}
	return out
}

// entity fill colors, RGB
var (
	pelletRGB = [3]uint8{0, 200, 0}
	foodRGB   = [3]uint8{255, 165, 0}
	virusRGB  = [3]uint8{0, 255, 180}
	agentRGB  = [3]uint8{40, 80, 255}
	otherRGB  = [3]uint8{220, 30, 30}
)

// capture software-rasterizes the current world into an RGB frame and
// appends it to the stack.
func (s *ScreenEnvironment) capture() {
	frame := make([]uint8, s.height*s.width*PixelChannels)

	for _, p := range s.world.pellets {
		s.fillCircle(frame, p.Pos, 1, pelletRGB)
	}
	for _, f := range s.world.foods {
		s.fillCircle(frame, f.Pos, 1.5, foodRGB)
	}
	for _, v := range s.world.viruses {
		s.fillCircle(frame, v.Pos, 10, virusRGB)
	}
	for _, bot := range s.world.bots {
		for i := range bot.Cells {
			s.fillCircle(frame, bot.Cells[i].Pos, bot.Cells[i].Radius(), otherRGB)
		}
	}
	for i := range s.world.agent.Cells {
		s.fillCircle(frame, s.world.agent.Cells[i].Pos, s.world.agent.Cells[i].Radius(), agentRGB)
	}

	s.frames = append(s.frames, frame)
	if len(s.frames) > ScreenFrames {
		s.frames = s.frames[1:]
	}
}

// fillCircle draws a filled circle in pixel space. The radius is given
// in arena units and scaled to pixels.
func (s *ScreenEnvironment) fillCircle(frame []uint8, pos core.Vec2, radius float64, rgb [3]uint8) {
	arena := s.world.arenaSize
	cx := pos.X / arena * float64(s.width)
	cy := pos.Y / arena * float64(s.height)
	pr := radius / arena * float64(s.width)
	if pr < 1 {
		pr = 1
	}

	x0 := core.Clamp(int(cx-pr), 0, s.width-1)
	x1 := core.Clamp(int(cx+pr), 0, s.width-1)
	y0 := core.Clamp(int(cy-pr), 0, s.height-1)
	y1 := core.Clamp(int(cy+pr), 0, s.height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy > pr*pr {
				continue
			}
			base := (y*s.width + x) * PixelChannels
			frame[base] = rgb[0]
			frame[base+1] = rgb[1]
			frame[base+2] = rgb[2]
		}
	}
}
