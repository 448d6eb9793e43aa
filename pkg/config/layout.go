package config

import (
	"fmt"
	"math"
	"slices"

	"github.com/decker502/powershooter/pkg/embedded"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
	"gopkg.in/yaml.v3"
)

// LayoutsPattern matches the per-level layout files.
const LayoutsPattern = "data/levels/level-*.yaml"

// Grid shapes.
const (
	ShapeFull    = ""
	ShapeOutline = "outline" // border cells only
	ShapeDiamond = "diamond" // cells within grid-radius steps of the center
)

// Default placement values.
const (
	defaultBlockSize = 50
	defaultBiochemHP = 2
)

// Repeat steps a placement count times by (dx, dy).
type Repeat struct {
	Count int     `yaml:"count"`
	DX    float64 `yaml:"dx"`
	DY    float64 `yaml:"dy"`
}

// Ring spreads count blocks evenly on a circle around the placement's
// position, starting to the right and turning clockwise.
type Ring struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
}

// BlockPlacement places one block, a line of blocks (repeat), a grid of
// them (repeat and rows) or a ring.
type BlockPlacement struct {
	Type  types.BlockType `yaml:"type"`
	X     float64         `yaml:"x"`
	Y     float64         `yaml:"y"`
	W     float64         `yaml:"w"` // 0 means 50
	H     float64         `yaml:"h"` // 0 means 50
	Color string          `yaml:"color"`
	HP    int             `yaml:"hp"`

	Repeat *Repeat  `yaml:"repeat"` // columns
	Rows   *Repeat  `yaml:"rows"`
	Shape  string   `yaml:"shape"`
	Skip   [][2]int `yaml:"skip"` // [column, row] cells left empty
	Ring   *Ring    `yaml:"ring"`
}

// Cells returns the top-left corner of every block the placement makes, in
// column-major order.
func (b *BlockPlacement) Cells() []utils.Point {
	if b.Ring != nil {
		out := make([]utils.Point, 0, b.Ring.Count)
		for k := 0; k < b.Ring.Count; k++ {
			angle := 2 * math.Pi * float64(k) / float64(b.Ring.Count)
			out = append(out, utils.Point{
				X: b.X + math.Cos(angle)*b.Ring.Radius,
				Y: b.Y + math.Sin(angle)*b.Ring.Radius,
			})
		}
		return out
	}
	cols, rows := stepOf(b.Repeat), stepOf(b.Rows)
	var out []utils.Point
	for c := 0; c < cols.Count; c++ {
		for r := 0; r < rows.Count; r++ {
			if !b.keeps(c, r, cols.Count, rows.Count) {
				continue
			}
			out = append(out, utils.Point{
				X: b.X + float64(c)*cols.DX + float64(r)*rows.DX,
				Y: b.Y + float64(c)*cols.DY + float64(r)*rows.DY,
			})
		}
	}
	return out
}

func (b *BlockPlacement) keeps(c, r, cols, rows int) bool {
	if slices.Contains(b.Skip, [2]int{c, r}) {
		return false
	}
	switch b.Shape {
	case ShapeOutline:
		return c == 0 || r == 0 || c == cols-1 || r == rows-1
	case ShapeDiamond:
		dc := math.Abs(float64(c) - float64(cols-1)/2)
		dr := math.Abs(float64(r) - float64(rows-1)/2)
		return dc+dr <= float64(min(cols, rows)-1)/2
	}
	return true
}

func stepOf(r *Repeat) Repeat {
	if r == nil {
		return Repeat{Count: 1}
	}
	return *r
}

// ScatterPlacement drops count breakable blocks at random inside Area.
// With MaxSize above MinSize each block gets a random square size in
// [MinSize, MaxSize).
type ScatterPlacement struct {
	Count   int        `yaml:"count"`
	Area    utils.Rect `yaml:"area"`
	MinSize int        `yaml:"minSize"`
	MaxSize int        `yaml:"maxSize"`
	Color   string     `yaml:"color"`
	HP      int        `yaml:"hp"`
}

// PowerUpPlacement places a power-up.
type PowerUpPlacement struct {
	Type types.PowerUpType `yaml:"type"`
	X    float64           `yaml:"x"`
	Y    float64           `yaml:"y"`
}

// DoorPlacement places an exit door.
type DoorPlacement struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"`
}

// BirdPlacement places a caged bird. An empty color takes the next cage color.
type BirdPlacement struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"`
}

// TrainPlacement places a train. Bounds are x limits on horizontal paths and
// y limits on vertical ones.
type TrainPlacement struct {
	Kind      types.TrainKind `yaml:"kind"`
	Path      string          `yaml:"path"`
	X         float64         `yaml:"x"`
	Y         float64         `yaml:"y"`
	W         float64         `yaml:"w"`
	H         float64         `yaml:"h"`
	Speed     float64         `yaml:"speed"`
	Damage    int             `yaml:"damage"`
	MinBound  float64         `yaml:"minBound"`
	MaxBound  float64         `yaml:"maxBound"`
	Direction float64         `yaml:"direction"`
	Waypoints []utils.Point   `yaml:"waypoints"`

	path types.TrainPath
}

// TrainPath returns the parsed path.
func (t *TrainPlacement) TrainPath() types.TrainPath { return t.path }

// BouncerPlacement places a bouncing pad.
type BouncerPlacement struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Color string  `yaml:"color"`
}

// PortalPlacement places a portal and where it sends the player.
type PortalPlacement struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	TargetX float64 `yaml:"targetX"`
	TargetY float64 `yaml:"targetY"`
}

// SpawnPlacement adds enemy spawn areas, repeat steps the area.
type SpawnPlacement struct {
	utils.Rect `yaml:",inline"`
	Repeat     *Repeat `yaml:"repeat"`
}

// Areas returns every spawn area the placement makes.
func (s *SpawnPlacement) Areas() []utils.Rect {
	step := stepOf(s.Repeat)
	out := make([]utils.Rect, 0, step.Count)
	for i := 0; i < step.Count; i++ {
		out = append(out, utils.NewRect(s.X+float64(i)*step.DX, s.Y+float64(i)*step.DY, s.W, s.H))
	}
	return out
}

// Layout is one data/levels/level-N.yaml file: everything placed in a level.
// Coordinates are playfield pixels.
type Layout struct {
	Level    int                `yaml:"level"`
	// Openings are kept clear: a block whose top-left corner falls inside
	// one is not placed.
	Openings []utils.Rect       `yaml:"openings"`
	Blocks   []BlockPlacement   `yaml:"blocks"`
	Scatter  []ScatterPlacement `yaml:"scatter"`
	PowerUps []PowerUpPlacement `yaml:"powerUps"`
	Doors    []DoorPlacement    `yaml:"doors"`
	Birds    []BirdPlacement    `yaml:"birds"`
	Trains   []TrainPlacement   `yaml:"trains"`
	Bouncers []BouncerPlacement `yaml:"bouncers"`
	Portals  []PortalPlacement  `yaml:"portals"`
	Spawns   []SpawnPlacement   `yaml:"spawns"`
}

// Open reports whether (x, y) falls inside one of the layout's openings.
func (l *Layout) Open(x, y float64) bool {
	for _, o := range l.Openings {
		if o.Contains(x, y) {
			return true
		}
	}
	return false
}

// LoadLayouts reads every file matching pattern and indexes the layouts by
// level id.
func LoadLayouts(pattern string) (map[int]*Layout, error) {
	files, err := embedded.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list layout files %s: %w", pattern, err)
	}
	slices.Sort(files)

	layouts := make(map[int]*Layout, len(files))
	sources := make(map[int]string, len(files))
	for _, file := range files {
		l, err := LoadLayout(file)
		if err != nil {
			return nil, err
		}
		if prev, dup := sources[l.Level]; dup {
			return nil, fmt.Errorf("level %d laid out twice, in %s and %s", l.Level, prev, file)
		}
		layouts[l.Level] = l
		sources[l.Level] = file
	}
	return layouts, nil
}

// LoadLayout reads and validates one layout file.
func LoadLayout(file string) (*Layout, error) {
	data, err := embedded.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", file, err)
	}
	return ParseLayout(data, file)
}

// ParseLayout decodes layout YAML.
func ParseLayout(data []byte, source string) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML from %s: %w", source, err)
	}
	applyLayoutDefaults(&l)
	if err := validateLayout(&l); err != nil {
		return nil, fmt.Errorf("invalid layout in %s: %w", source, err)
	}
	return &l, nil
}

func applyLayoutDefaults(l *Layout) {
	for i := range l.Blocks {
		b := &l.Blocks[i]
		if b.Type == "" {
			b.Type = types.BlockSolid
		}
		if b.W == 0 {
			b.W = defaultBlockSize
		}
		if b.H == 0 {
			b.H = defaultBlockSize
		}
		if b.HP == 0 && b.Type == types.BlockBiochem {
			b.HP = defaultBiochemHP
		}
	}
	for i := range l.Scatter {
		s := &l.Scatter[i]
		if s.MinSize == 0 {
			s.MinSize = defaultBlockSize
		}
	}
	for i := range l.Trains {
		if l.Trains[i].Path == "" {
			l.Trains[i].Path = types.TrainHorizontal.String()
		}
	}
}

func validateLayout(l *Layout) error {
	if l.Level < 1 {
		return fmt.Errorf("level id must be at least 1, got %d", l.Level)
	}
	if len(l.Doors) == 0 {
		return fmt.Errorf("level %d: at least one door is required", l.Level)
	}
	if len(l.Spawns) == 0 {
		return fmt.Errorf("level %d: at least one spawn area is required", l.Level)
	}

	for i := range l.Blocks {
		b := &l.Blocks[i]
		switch b.Type {
		case types.BlockSolid, types.BlockBreakable, types.BlockDestructible, types.BlockBiochem:
		default:
			return fmt.Errorf("level %d block %d: unsupported type %q", l.Level, i, b.Type)
		}
		switch b.Shape {
		case ShapeFull, ShapeOutline, ShapeDiamond:
		default:
			return fmt.Errorf("level %d block %d: unknown shape %q", l.Level, i, b.Shape)
		}
		if b.Ring != nil && (b.Ring.Count < 1 || b.Repeat != nil || b.Rows != nil) {
			return fmt.Errorf("level %d block %d: a ring needs a positive count and no repeat", l.Level, i)
		}
		for _, r := range []*Repeat{b.Repeat, b.Rows} {
			if r != nil && r.Count < 1 {
				return fmt.Errorf("level %d block %d: repeat count must be positive, got %d", l.Level, i, r.Count)
			}
		}
		if b.W < 0 || b.H < 0 || b.HP < 0 {
			return fmt.Errorf("level %d block %d: negative size or hp", l.Level, i)
		}
		if err := checkColor(b.Color); err != nil {
			return fmt.Errorf("level %d block %d: %w", l.Level, i, err)
		}
	}
	for i, s := range l.Scatter {
		if s.Count < 1 || s.Area.W <= 0 || s.Area.H <= 0 {
			return fmt.Errorf("level %d scatter %d: needs a positive count and area", l.Level, i)
		}
		if s.MaxSize != 0 && s.MaxSize < s.MinSize {
			return fmt.Errorf("level %d scatter %d: maxSize %d below minSize %d", l.Level, i, s.MaxSize, s.MinSize)
		}
		if err := checkColor(s.Color); err != nil {
			return fmt.Errorf("level %d scatter %d: %w", l.Level, i, err)
		}
	}
	for i, p := range l.PowerUps {
		switch p.Type {
		case types.PowerUpHealth, types.PowerUpWeapon, types.PowerUpKey, types.PowerUpScore, types.PowerUpSpeed:
		default:
			return fmt.Errorf("level %d power-up %d: unknown type %q", l.Level, i, p.Type)
		}
	}
	for i, d := range l.Doors {
		if err := checkColor(d.Color); err != nil {
			return fmt.Errorf("level %d door %d: %w", l.Level, i, err)
		}
	}
	for i, b := range l.Birds {
		if err := checkColor(b.Color); err != nil {
			return fmt.Errorf("level %d bird %d: %w", l.Level, i, err)
		}
	}
	for i := range l.Trains {
		t := &l.Trains[i]
		p, err := types.ParseTrainPath(t.Path)
		if err != nil {
			return fmt.Errorf("level %d train %d: %w", l.Level, i, err)
		}
		t.path = p
		if p == types.TrainWaypoints && len(t.Waypoints) < 2 {
			return fmt.Errorf("level %d train %d: a waypoint path needs at least 2 points", l.Level, i)
		}
		if t.Speed <= 0 || t.W <= 0 || t.H <= 0 {
			return fmt.Errorf("level %d train %d: needs a positive speed and size", l.Level, i)
		}
	}
	for i, b := range l.Bouncers {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("level %d bouncer %d: needs a positive size", l.Level, i)
		}
		if err := checkColor(b.Color); err != nil {
			return fmt.Errorf("level %d bouncer %d: %w", l.Level, i, err)
		}
	}
	for i := range l.Spawns {
		s := &l.Spawns[i]
		if s.W <= 0 || s.H <= 0 {
			return fmt.Errorf("level %d spawn %d: needs a positive size", l.Level, i)
		}
		if s.Repeat != nil && s.Repeat.Count < 1 {
			return fmt.Errorf("level %d spawn %d: repeat count must be positive, got %d", l.Level, i, s.Repeat.Count)
		}
	}
	return nil
}

// checkColor accepts "" (the entity's own default) or a hex color.
func checkColor(hex string) error {
	if hex == "" {
		return nil
	}
	_, err := utils.ParseHexColor(hex)
	return err
}
