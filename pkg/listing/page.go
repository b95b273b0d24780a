package listing

// Page is one page of a list. Length zero shows everything on one page.
type Page[T any] struct {
	Items  []T
	Number int
	Pages  int
	Length int
	Total  int
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.Pages
}

func (p Page[T]) Previous() int {
	return p.Number - 1
}

func (p Page[T]) Next() int {
	return p.Number + 1
}

// Paginate slices items into the requested page; out of range page numbers
// are clamped.
func Paginate[T any](items []T, length int, number int) Page[T] {
	total := len(items)

	if length <= 0 || total == 0 {
		return Page[T]{Items: items, Number: 1, Pages: 1, Length: length, Total: total}
	}

	pages := (total + length - 1) / length
	number = max(1, min(number, pages))

	start := (number - 1) * length
	end := min(start+length, total)

	return Page[T]{Items: items[start:end], Number: number, Pages: pages, Length: length, Total: total}
}
