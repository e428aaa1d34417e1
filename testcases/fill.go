package testcases

var fillCases = []TestCase{
	{
		Name:   "fill_solid",
		Width:  6,
		Height: 4,
		Ops: []Op{
			Fill{R: 12, G: 34, B: 56},
		},
	},
	{
		Name:   "fill_overwrite",
		Width:  5,
		Height: 5,
		Ops: []Op{
			Fill{R: 255},
			Fill{B: 255},
		},
	},
	{
		Name:   "fill_then_draw",
		Width:  8,
		Height: 8,
		Ops: []Op{
			Fill{R: 30, G: 30, B: 30},
			Rect{Offset: pt(2, 2), Size: sz(4, 4), G: 200},
			Point{P: pt(0, 7), R: 255},
		},
	},
	{
		// filling back to the zero color must restore a fresh buffer
		Name:   "fill_to_zero",
		Width:  4,
		Height: 4,
		Ops: []Op{
			Fill{R: 99, G: 99, B: 99},
			Fill{},
		},
	},
}
