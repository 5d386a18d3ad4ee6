package book

// Book is a catalog entry. Copies are tracked as an aggregate count rather
// than per-copy rows; availability moves between 0 and the total.
type Book struct {
	id              int64
	title           Title
	author          Author
	isbn            ISBN
	totalCopies     int32
	availableCopies int32
}

// NewBook validates all catalog fields and starts the book fully available.
// The id is assigned by the store on insert.
func NewBook(title, author, isbn string, totalCopies int32) (*Book, error) {
	titleVO, err := NewTitle(title)
	if err != nil {
		return nil, err
	}
	authorVO, err := NewAuthor(author)
	if err != nil {
		return nil, err
	}
	isbnVO, err := NewISBN(isbn)
	if err != nil {
		return nil, err
	}
	copies, err := NewCopyCount(totalCopies)
	if err != nil {
		return nil, err
	}

	return &Book{
		title:           titleVO,
		author:          authorVO,
		isbn:            isbnVO,
		totalCopies:     copies.Value(),
		availableCopies: copies.Value(),
	}, nil
}

func ReconstructBook(id int64, title Title, author Author, isbn ISBN, totalCopies, availableCopies int32) *Book {
	return &Book{
		id:              id,
		title:           title,
		author:          author,
		isbn:            isbn,
		totalCopies:     totalCopies,
		availableCopies: availableCopies,
	}
}

func (b *Book) HasAvailableCopy() bool {
	return b.availableCopies > 0
}

func (b *Book) ID() int64              { return b.id }
func (b *Book) Title() Title           { return b.title }
func (b *Book) Author() Author         { return b.author }
func (b *Book) ISBN() ISBN             { return b.isbn }
func (b *Book) TotalCopies() int32     { return b.totalCopies }
func (b *Book) AvailableCopies() int32 { return b.availableCopies }
