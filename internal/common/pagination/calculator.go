package pagination

// CalculateTotalPages returns ceil(total / limit), and at least 1.
//
//   - Total 0, Limit 9 -> 1 page
//   - Total 9, Limit 9 -> 1 page
//   - Total 10, Limit 9 -> 2 pages
func CalculateTotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}
