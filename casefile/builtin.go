package casefile

import "github.com/katalvlaran/boundsearch/knapsack"

// Builtin returns the reference benchmark suite: four knapsack cases
// (3, 5, 15 and 25 items) and four symmetric TSP cases (6, 9, 12 and 14
// cities).
func Builtin() File {
	return File{
		Knapsack: []KnapsackCase{
			{
				Name:     "case 1: strategically selected edge case",
				Capacity: capacity(10),
				Items: items(
					6, 50,
					5, 30,
					5, 30,
				),
			},
			{
				Name:     "case 2: example 5-item test case",
				Capacity: capacity(10),
				Items: items(
					2, 40,
					3.14, 50,
					1.98, 100,
					5, 95,
					3, 30,
				),
			},
			{
				Name:     "case 3: 15 semi-random items",
				Capacity: capacity(20),
				Items: items(
					1.83, 33.41,
					2.1, 13.07,
					2.13, 29.55,
					4.39, 77.13,
					2.22, 48.01,
					3.17, 72.84,
					1.47, 16.29,
					3.19, 0.26,
					4.73, 39.88,
					1.02, 11.71,
					3.33, 59.2,
					3.79, 21.21,
					1.82, 3.38,
					4.63, 54.85,
					2.62, 16.75,
				),
			},
			{
				Name:     "case 4: 25 semi-random items",
				Capacity: capacity(50),
				Items: items(
					0.94, 12.58,
					2.18, 18.16,
					4.91, 0.76,
					1.87, 25.15,
					2.84, 25.71,
					3.99, 61.15,
					3.64, 25.29,
					0.32, 6.94,
					0.36, 2.61,
					0.74, 15.24,
					2.69, 58.92,
					3.92, 73.68,
					0.94, 0.28,
					1.72, 22.75,
					4.86, 120.58,
					4.2, 18.77,
					2.16, 12.46,
					2.46, 42.55,
					2.73, 5.6,
					4.66, 23.39,
					4.98, 23.53,
					2.57, 4.65,
					0.11, 1.3,
					1.67, 8.33,
					3.35, 44.65,
				),
			},
		},
		TSP: []TSPCase{
			{
				Name:      "case 1: 6 cities",
				Symmetric: true,
				Matrix: [][]float64{
					{0, 12, 29, 22, 13, 24},
					{12, 0, 19, 3, 25, 6},
					{29, 19, 0, 21, 23, 28},
					{22, 3, 21, 0, 4, 5},
					{13, 25, 23, 4, 0, 16},
					{24, 6, 28, 5, 16, 0},
				},
			},
			{
				Name:      "case 2: 9 cities",
				Symmetric: true,
				Matrix: [][]float64{
					{0, 24, 77, 91, 31, 88, 45, 37, 59},
					{24, 0, 72, 82, 6, 44, 88, 13, 68},
					{77, 72, 0, 91, 98, 9, 24, 13, 62},
					{91, 82, 91, 0, 42, 64, 41, 12, 23},
					{31, 6, 98, 42, 0, 5, 38, 67, 7},
					{88, 44, 9, 64, 5, 0, 10, 93, 52},
					{45, 88, 24, 41, 38, 10, 0, 38, 95},
					{37, 13, 13, 12, 67, 93, 38, 0, 17},
					{59, 68, 62, 23, 7, 52, 95, 17, 0},
				},
			},
			{
				Name:      "case 3: 12 cities",
				Symmetric: true,
				Matrix: [][]float64{
					{0, 9, 52, 48, 58, 47, 66, 77, 76, 91, 59, 70},
					{9, 0, 8, 66, 69, 65, 2, 2, 27, 98, 74, 86},
					{52, 8, 0, 21, 16, 46, 66, 3, 67, 7, 22, 55},
					{48, 66, 21, 0, 18, 24, 6, 66, 88, 72, 78, 63},
					{58, 69, 16, 18, 0, 73, 77, 32, 28, 62, 72, 23},
					{47, 65, 46, 24, 73, 0, 66, 49, 94, 45, 73, 22},
					{66, 2, 66, 6, 77, 66, 0, 32, 81, 86, 99, 67},
					{77, 2, 3, 66, 32, 49, 32, 0, 21, 16, 42, 64},
					{76, 27, 67, 88, 28, 94, 81, 21, 0, 52, 49, 83},
					{91, 98, 7, 72, 62, 45, 86, 16, 52, 0, 3, 22},
					{59, 74, 22, 78, 72, 73, 99, 42, 49, 3, 0, 3},
					{70, 86, 55, 63, 23, 22, 67, 64, 83, 22, 3, 0},
				},
			},
			{
				Name:      "case 4: 14 cities",
				Symmetric: true,
				Matrix: [][]float64{
					{0, 52, 71, 70, 78, 86, 41, 23, 22, 43, 19, 63, 78, 89},
					{52, 0, 23, 76, 76, 64, 83, 40, 11, 98, 56, 23, 35, 62},
					{71, 23, 0, 78, 65, 75, 75, 58, 59, 12, 99, 43, 9, 34},
					{70, 76, 78, 0, 89, 42, 25, 52, 10, 61, 38, 14, 18, 89},
					{78, 76, 65, 89, 0, 11, 28, 44, 4, 24, 21, 80, 99, 66},
					{86, 64, 75, 42, 11, 0, 57, 21, 36, 42, 16, 28, 59, 95},
					{41, 83, 75, 25, 28, 57, 0, 60, 77, 68, 61, 76, 79, 59},
					{23, 40, 58, 52, 44, 21, 60, 0, 96, 6, 40, 87, 84, 80},
					{22, 11, 59, 10, 4, 36, 77, 96, 0, 6, 40, 85, 23, 42},
					{43, 98, 12, 61, 24, 42, 68, 6, 6, 0, 71, 61, 35, 1},
					{19, 56, 99, 38, 21, 16, 61, 40, 40, 71, 0, 40, 98, 44},
					{63, 23, 43, 14, 80, 28, 76, 87, 85, 61, 40, 0, 12, 76},
					{78, 35, 9, 18, 99, 59, 79, 84, 23, 35, 98, 12, 0, 18},
					{89, 62, 34, 89, 66, 95, 59, 80, 42, 1, 44, 76, 18, 0},
				},
			},
		},
	}
}

// items builds a case item list from (weight, value) pairs; IDs are 1-based
// in pair order.
func items(pairs ...float64) []knapsack.Item {
	out := make([]knapsack.Item, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, knapsack.Item{ID: i/2 + 1, Weight: pairs[i], Value: pairs[i+1]})
	}

	return out
}

func capacity(c float64) *float64 { return &c }
