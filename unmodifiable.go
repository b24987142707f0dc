package gocoll

// Unmodifiable returns a read-only view of a list. Every mutating operation, including
// those of its iterators and sub-lists, fails with ErrUnsupported. Changes made to the
// underlying list remain visible through the view.
func Unmodifiable[E any](l List[E]) List[E] {
	return unmodifiableList[E]{unmodifiableCollection[E]{l}, l}
}

// UnmodifiableCollection returns a read-only view of a collection.
func UnmodifiableCollection[E any](c Collection[E]) Collection[E] {
	return unmodifiableCollection[E]{c}
}

type unmodifiableCollection[E any] struct {
	c Collection[E]
}

func (u unmodifiableCollection[E]) Size() int {
	return u.c.Size()
}

func (u unmodifiableCollection[E]) IsEmpty() bool {
	return u.c.IsEmpty()
}

func (u unmodifiableCollection[E]) Contains(e E) bool {
	return u.c.Contains(e)
}

func (u unmodifiableCollection[E]) ToSlice() []E {
	return u.c.ToSlice()
}

func (u unmodifiableCollection[E]) Spliterator() Spliterator[E] {
	return u.c.Spliterator()
}

func (u unmodifiableCollection[E]) String() string {
	return String(u.c)
}

// Equality forwards the element equivalence of the wrapped collection.
func (u unmodifiableCollection[E]) Equality() EqualsFunc[E] {
	return EqualityOf[E](u.c)
}

func (u unmodifiableCollection[E]) Add(E) (bool, error) {
	return false, Unsupported("add")
}

func (u unmodifiableCollection[E]) Remove(E) (bool, error) {
	return false, Unsupported("remove")
}

func (u unmodifiableCollection[E]) Clear() error {
	return Unsupported("clear")
}

func (u unmodifiableCollection[E]) Iterator() Iterator[E] {
	return unmodifiableIterator[E]{u.c.Iterator()}
}

type unmodifiableList[E any] struct {
	unmodifiableCollection[E]
	l List[E]
}

func (u unmodifiableList[E]) Get(index int) (E, error) {
	return u.l.Get(index)
}

func (u unmodifiableList[E]) IndexOf(e E) int {
	return u.l.IndexOf(e)
}

func (u unmodifiableList[E]) LastIndexOf(e E) int {
	return u.l.LastIndexOf(e)
}

func (u unmodifiableList[E]) Set(int, E) (E, error) {
	var zero E
	return zero, Unsupported("set")
}

func (u unmodifiableList[E]) Insert(int, E) error {
	return Unsupported("insert")
}

func (u unmodifiableList[E]) RemoveAt(int) (E, error) {
	var zero E
	return zero, Unsupported("remove")
}

func (u unmodifiableList[E]) Iterator() Iterator[E] {
	return unmodifiableIterator[E]{u.l.Iterator()}
}

func (u unmodifiableList[E]) ListIterator(index int) (ListIterator[E], error) {
	it, err := u.l.ListIterator(index)
	if err != nil {
		return nil, err
	}
	return unmodifiableListIterator[E]{unmodifiableIterator[E]{it}, it}, nil
}

func (u unmodifiableList[E]) SubList(from, to int) (List[E], error) {
	sub, err := u.l.SubList(from, to)
	if err != nil {
		return nil, err
	}
	return Unmodifiable(sub), nil
}

type unmodifiableIterator[E any] struct {
	Iterator[E]
}

func (u unmodifiableIterator[E]) Remove() error {
	return Unsupported("iterator remove")
}

type unmodifiableListIterator[E any] struct {
	unmodifiableIterator[E]
	it ListIterator[E]
}

func (u unmodifiableListIterator[E]) HasPrevious() bool {
	return u.it.HasPrevious()
}

func (u unmodifiableListIterator[E]) Previous() (E, error) {
	return u.it.Previous()
}

func (u unmodifiableListIterator[E]) NextIndex() int {
	return u.it.NextIndex()
}

func (u unmodifiableListIterator[E]) PreviousIndex() int {
	return u.it.PreviousIndex()
}

func (u unmodifiableListIterator[E]) Set(E) error {
	return Unsupported("iterator set")
}

func (u unmodifiableListIterator[E]) Add(E) error {
	return Unsupported("iterator add")
}

