package testcases

var drawCases = []TestCase{
	{
		// draw one red point, leave the far corner untouched
		Name:   "single_point",
		Width:  4,
		Height: 3,
		Ops: []Op{
			Point{P: pt(0, 0), R: 255},
		},
	},
	{
		Name:   "point_each_corner",
		Width:  5,
		Height: 4,
		Ops: []Op{
			Point{P: pt(0, 0), R: 255},
			Point{P: pt(4, 0), G: 255},
			Point{P: pt(0, 3), B: 255},
			Point{P: pt(4, 3), R: 255, G: 255, B: 255},
		},
	},
	{
		Name:   "point_overwrite",
		Width:  3,
		Height: 3,
		Ops: []Op{
			Point{P: pt(1, 1), R: 10, G: 20, B: 30},
			Point{P: pt(1, 1), R: 200, G: 100, B: 50},
		},
	},
	{
		// 3x3 box translated by (2,2): paints x,y in [2,5)
		Name:   "rect_interior",
		Width:  10,
		Height: 10,
		Ops: []Op{
			Rect{Offset: pt(2, 2), Size: sz(3, 3), R: 10, G: 20, B: 30},
		},
	},
	{
		Name:   "rect_single_row",
		Width:  8,
		Height: 4,
		Ops: []Op{
			Rect{Offset: pt(1, 2), Size: sz(5, 1), G: 128},
		},
	},
	{
		Name:   "rect_single_column",
		Width:  4,
		Height: 8,
		Ops: []Op{
			Rect{Offset: pt(2, 1), Size: sz(1, 5), B: 128},
		},
	},
	{
		Name:   "rect_overlapping",
		Width:  12,
		Height: 12,
		Ops: []Op{
			Rect{Offset: pt(1, 1), Size: sz(6, 6), R: 255},
			Rect{Offset: pt(4, 4), Size: sz(6, 6), B: 255},
		},
	},
	{
		Name:   "rect_then_point",
		Width:  6,
		Height: 6,
		Ops: []Op{
			Rect{Offset: pt(0, 0), Size: sz(6, 6), R: 40, G: 40, B: 40},
			Point{P: pt(3, 3), R: 255, G: 255},
		},
	},
	{
		// empty box paints nothing
		Name:   "rect_zero_size",
		Width:  5,
		Height: 5,
		Ops: []Op{
			Rect{Offset: pt(2, 2), Size: sz(0, 0), R: 255},
			Rect{Offset: pt(1, 1), Size: sz(3, 0), G: 255},
			Rect{Offset: pt(1, 1), Size: sz(0, 3), B: 255},
		},
	},
}
