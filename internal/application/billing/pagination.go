package billing

// ItemsPerPage tamaño fijo de página de los listados del dashboard.
const ItemsPerPage = 6

// PageOffset traduce un número de página (base 1) al offset de la consulta.
// Páginas menores que 1 se tratan como la primera.
func PageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * ItemsPerPage
}

// TotalPages devuelve ceil(total / ItemsPerPage).
func TotalPages(total int64) int {
	return int((total + ItemsPerPage - 1) / ItemsPerPage)
}
