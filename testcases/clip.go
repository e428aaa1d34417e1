package testcases

var clipCases = []TestCase{
	{
		// (W,0) and (0,H) resolve to index W*H and beyond; both must be
		// discarded, not wrapped into the buffer
		Name:   "point_boundary_equality",
		Width:  4,
		Height: 3,
		Ops: []Op{
			Point{P: pt(4, 0), R: 255},
			Point{P: pt(0, 3), G: 255},
			Point{P: pt(4, 3), B: 255},
		},
	},
	{
		Name:   "point_negative",
		Width:  4,
		Height: 4,
		Ops: []Op{
			Point{P: pt(-1, 0), R: 255},
			Point{P: pt(0, -1), G: 255},
			Point{P: pt(-3, -3), B: 255},
		},
	},
	{
		// 4x4 box hanging off the bottom-right corner
		Name:   "rect_past_edge",
		Width:  10,
		Height: 10,
		Ops: []Op{
			Rect{Offset: pt(8, 8), Size: sz(4, 4), R: 10, G: 20, B: 30},
		},
	},
	{
		Name:   "rect_negative_offset",
		Width:  6,
		Height: 6,
		Ops: []Op{
			Rect{Offset: pt(-2, -2), Size: sz(5, 5), R: 200},
		},
	},
	{
		Name:   "rect_fully_outside",
		Width:  5,
		Height: 5,
		Ops: []Op{
			Rect{Offset: pt(5, 0), Size: sz(3, 3), R: 255},
			Rect{Offset: pt(0, 5), Size: sz(3, 3), G: 255},
			Rect{Offset: pt(-4, -4), Size: sz(3, 3), B: 255},
		},
	},
	{
		// box wider and taller than the whole buffer
		Name:   "rect_covers_buffer",
		Width:  4,
		Height: 4,
		Ops: []Op{
			Rect{Offset: pt(-1, -1), Size: sz(8, 8), R: 1, G: 2, B: 3},
		},
	},
	{
		Name:   "empty_buffer",
		Width:  0,
		Height: 0,
		Ops: []Op{
			Point{P: pt(0, 0), R: 255},
			Rect{Offset: pt(0, 0), Size: sz(2, 2), G: 255},
		},
	},
	{
		Name:   "zero_height",
		Width:  7,
		Height: 0,
		Ops: []Op{
			Point{P: pt(3, 0), R: 255},
		},
	},
}
