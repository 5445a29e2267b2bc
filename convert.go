package asciiart

// Convert maps a brightness grid to character art, one matched rune per
// cell. The grid layout is preserved row for row.
func Convert(m *Matcher, grid [][]float64) ([][]rune, error) {
	art := make([][]rune, len(grid))
	for y, row := range grid {
		art[y] = make([]rune, len(row))
		for x, b := range row {
			r, err := m.Match(b)
			if err != nil {
				return nil, err
			}
			art[y][x] = r
		}
	}
	return art, nil
}
