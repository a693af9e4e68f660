package rama

// The tables below are tested in order and the last containing region wins,
// so a narrow band listed after the wider band around it takes precedence.
// All polygons are closed and use degrees.

var generalRegions = []Region{
	{BetaWide, Polygon{
		{-180, 80}, {-40, 80}, {-40, 180}, {-180, 180}, {-180, 80},
	}},
	{BetaCore, Polygon{
		{-160, 105}, {-120, 100}, {-70, 110}, {-55, 145}, {-70, 175},
		{-160, 175}, {-160, 105},
	}},
	{RightAlphaWide, Polygon{
		{-170, -100}, {-100, -110}, {-30, -90}, {-20, -20}, {-40, 45},
		{-120, 50}, {-170, 10}, {-170, -100},
	}},
	{RightAlphaCore, Polygon{
		{-110, -75}, {-60, -75}, {-35, -55}, {-35, -20}, {-60, -5},
		{-110, -20}, {-110, -75},
	}},
	{LeftAlphaWide, Polygon{
		{30, -20}, {100, -20}, {100, 100}, {30, 100}, {30, -20},
	}},
	{LeftAlphaCore, Polygon{
		{45, 15}, {75, 15}, {80, 60}, {50, 70}, {45, 15},
	}},
	{BetaWrap, Polygon{
		{-180, -180}, {-40, -180}, {-40, -140}, {-180, -140}, {-180, -180},
	}},
	{ZeroPhi, Polygon{
		{-20, -100}, {30, -100}, {30, 100}, {-20, 100}, {-20, -100},
	}},
	{Epsilon, Polygon{
		{50, 150}, {110, 150}, {110, 180}, {50, 180}, {50, 150},
	}},
	{Gamma, Polygon{
		{60, -90}, {110, -90}, {110, -30}, {60, -30}, {60, -90},
	}},
	{Bridge, Polygon{
		{-130, 50}, {-40, 50}, {-40, 80}, {-130, 80}, {-130, 50},
	}},
	{PositivePhiLow, Polygon{
		{60, -180}, {180, -180}, {180, -120}, {60, -120}, {60, -180},
	}},
	{PositivePhiHigh, Polygon{
		{110, 100}, {180, 100}, {180, 180}, {110, 180}, {110, 100},
	}},
}

var glycineRegions = []Region{
	// Area2
	{GlyA2RightAlpha, Polygon{
		{-120, -70}, {-40, -70}, {-40, 10}, {-120, 10}, {-120, -70},
	}},
	{GlyA2LeftAlpha, Polygon{
		{40, -10}, {120, -10}, {120, 70}, {40, 70}, {40, -10},
	}},
	{GlyA2Beta, Polygon{
		{-180, 120}, {-50, 120}, {-50, 180}, {-180, 180}, {-180, 120},
	}},
	{GlyA2MirrorBeta, Polygon{
		{50, -180}, {180, -180}, {180, -120}, {50, -120}, {50, -180},
	}},

	// Area1
	{GlyA1RightAlpha, Polygon{
		{-100, -60}, {-50, -60}, {-50, -20}, {-100, -20}, {-100, -60},
	}},
	{GlyA1LeftAlpha, Polygon{
		{50, 20}, {100, 20}, {100, 60}, {50, 60}, {50, 20},
	}},
	{GlyA1Beta, Polygon{
		{-180, 140}, {-60, 140}, {-60, 180}, {-180, 180}, {-180, 140},
	}},
	{GlyA1MirrorBeta, Polygon{
		{60, -180}, {180, -180}, {180, -140}, {60, -140}, {60, -180},
	}},
}

var prolineRegions = []Region{
	{ProAlphaWide, Polygon{
		{-100, -70}, {-40, -70}, {-40, 10}, {-100, 10}, {-100, -70},
	}},
	{ProAlphaCore, Polygon{
		{-80, -55}, {-50, -55}, {-50, -20}, {-80, -20}, {-80, -55},
	}},
	{ProBetaWide, Polygon{
		{-100, 100}, {-40, 100}, {-40, 180}, {-100, 180}, {-100, 100},
	}},
	{ProBetaCore, Polygon{
		{-90, 120}, {-50, 120}, {-50, 170}, {-90, 170}, {-90, 120},
	}},
	{ProBridge, Polygon{
		{-100, 10}, {-40, 10}, {-40, 100}, {-100, 100}, {-100, 10},
	}},
	{ProBetaWrap, Polygon{
		{-100, -180}, {-40, -180}, {-40, -150}, {-100, -150}, {-100, -180},
	}},
}
