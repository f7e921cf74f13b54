package art_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/dolthub/maphash"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/rdaum/rart/pkg/art"
	"github.com/rdaum/rart/pkg/art/key"
)

func TestTreeBasicOperations(t *testing.T) {
	Convey("Given a new tree", t, func() {
		tr := art.New[int]()

		Convey("When the tree is empty", func() {
			So(tr.Len(), ShouldEqual, 0)

			_, ok := tr.Get(key.FromString("missing"))
			So(ok, ShouldBeFalse)

			_, _, ok = tr.Minimum()
			So(ok, ShouldBeFalse)

			_, _, ok = tr.Maximum()
			So(ok, ShouldBeFalse)

			_, deleted := tr.Delete(key.FromString("missing"))
			So(deleted, ShouldBeFalse)

			it := tr.Iter()
			So(it.Next(), ShouldBeFalse)
		})

		Convey("When inserting a single entry", func() {
			_, replaced := tr.Insert(key.FromString("hello"), 123)

			So(replaced, ShouldBeFalse)
			So(tr.Len(), ShouldEqual, 1)

			v, ok := tr.Get(key.FromString("hello"))
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 123)

			_, ok = tr.Get(key.FromString("world"))
			So(ok, ShouldBeFalse)

			Convey("Then Minimum and Maximum return it", func() {
				k, v, ok := tr.Minimum()
				So(ok, ShouldBeTrue)
				So(string(key.Key(k).Payload()), ShouldEqual, "hello")
				So(v, ShouldEqual, 123)

				k, v, ok = tr.Maximum()
				So(ok, ShouldBeTrue)
				So(string(key.Key(k).Payload()), ShouldEqual, "hello")
				So(v, ShouldEqual, 123)
			})

			Convey("And replacing it returns the old value", func() {
				old, replaced := tr.Insert(key.FromString("hello"), 456)

				So(replaced, ShouldBeTrue)
				So(old, ShouldEqual, 123)
				So(tr.Len(), ShouldEqual, 1)

				v, _ := tr.Get(key.FromString("hello"))
				So(v, ShouldEqual, 456)
			})

			Convey("And InsertNoReplace keeps the stored value", func() {
				existing, present := tr.InsertNoReplace(key.FromString("hello"), 789)

				So(present, ShouldBeTrue)
				So(existing, ShouldEqual, 123)

				v, _ := tr.Get(key.FromString("hello"))
				So(v, ShouldEqual, 123)
			})

			Convey("And deleting it empties the tree again", func() {
				old, deleted := tr.Delete(key.FromString("hello"))

				So(deleted, ShouldBeTrue)
				So(old, ShouldEqual, 123)
				So(tr.Len(), ShouldEqual, 0)

				_, ok := tr.Get(key.FromString("hello"))
				So(ok, ShouldBeFalse)

				Convey("And deleting again reports absence", func() {
					_, deleted := tr.Delete(key.FromString("hello"))
					So(deleted, ShouldBeFalse)
					So(tr.Len(), ShouldEqual, 0)
				})
			})
		})
	})
}

func TestTreeScenarioApple(t *testing.T) {
	Convey("Given apple, application and apply", t, func() {
		tr := art.New[int]()

		tr.Insert(key.FromString("apple"), 1)
		tr.Insert(key.FromString("application"), 2)
		tr.Insert(key.FromString("apply"), 3)

		Convey("Then Get finds each entry", func() {
			v, ok := tr.Get(key.FromString("apple"))
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 1)
		})

		Convey("Then iteration is lexicographic", func() {
			So(collectKeys(tr.Iter()), ShouldResemble, []string{"apple", "application", "apply"})
		})

		Convey("Then PrefixIter(app) yields all three", func() {
			So(collectKeys(tr.PrefixIter([]byte("app"))), ShouldResemble,
				[]string{"apple", "application", "apply"})
		})

		Convey("Then PrefixIter(appl) also yields all three", func() {
			So(collectKeys(tr.PrefixIter([]byte("appl"))), ShouldResemble,
				[]string{"apple", "application", "apply"})
		})

		Convey("Then PrefixIter(apple) yields just apple", func() {
			So(collectKeys(tr.PrefixIter([]byte("apple"))), ShouldResemble, []string{"apple"})
		})

		Convey("Then the longest prefix of applesauce is apple", func() {
			k, v, ok := tr.LongestPrefixMatch(key.FromString("applesauce"))

			So(ok, ShouldBeTrue)
			So(string(key.Key(k).Payload()), ShouldEqual, "apple")
			So(v, ShouldEqual, 1)
		})
	})
}

func TestTreeIntegerKeyOrder(t *testing.T) {
	Convey("Given big-endian unsigned integer keys", t, func() {
		tr := art.New[uint64]()

		for _, u := range []uint64{65535, 128, 0, 255, 1, 127} {
			tr.Insert(key.FromUint64(u), u)
		}

		Convey("Then iteration yields numeric order", func() {
			var got []uint64
			for _, v := range tr.All() {
				got = append(got, v)
			}

			So(got, ShouldResemble, []uint64{0, 1, 127, 128, 255, 65535})
		})
	})
}

func TestTreeHighBitKeys(t *testing.T) {
	Convey("Given single-byte keys spanning 0x00..0xff", t, func() {
		tr := art.New[int]()

		// Insertion order deliberately interleaves both halves.
		for i := 0; i < 256; i++ {
			b := byte((i * 37) % 256)
			tr.Insert([]byte{b, 0x00}, int(b))
		}

		So(tr.Len(), ShouldEqual, 256)

		Convey("Then iteration is strictly ascending across 0x80", func() {
			it := tr.Iter()

			var prev []byte
			count := 0
			for it.Next() {
				if prev != nil {
					So(bytes.Compare(prev, it.Key()), ShouldBeLessThan, 0)
				}
				prev = append(prev[:0], it.Key()...)
				count++
			}

			So(count, ShouldEqual, 256)
		})
	})
}

func TestTreeRandomizedRoundTrip(t *testing.T) {
	const n = 4096

	tr := art.New[uint64]()
	h := maphash.NewHasher[uint64]()

	expect := make(map[string]uint64, n)

	for i := uint64(0); i < n; i++ {
		v := h.Hash(i)
		k := key.FromUint64(v)

		tr.Insert(k, v)
		expect[string(k.AsSlice())] = v
	}

	if tr.Len() != len(expect) {
		t.Fatalf("Len() = %d, want %d", tr.Len(), len(expect))
	}

	// Every inserted key resolves to its value.
	for ks, v := range expect {
		got, ok := tr.Get([]byte(ks))
		if !ok || got != v {
			t.Fatalf("Get(%x) = (%d, %v), want %d", ks, got, ok, v)
		}
	}

	// Iteration equals the sorted insert set.
	var want []string
	for ks := range expect {
		want = append(want, ks)
	}
	sort.Strings(want)

	it := tr.Iter()
	for i := 0; it.Next(); i++ {
		if string(it.Key()) != want[i] {
			t.Fatalf("iteration out of order at %d: got %x, want %x", i, it.Key(), want[i])
		}
		if it.Value() != expect[want[i]] {
			t.Fatalf("wrong value at %x", it.Key())
		}
	}

	// Delete everything; the tree must drain completely.
	for ks := range expect {
		if _, deleted := tr.Delete([]byte(ks)); !deleted {
			t.Fatalf("Delete(%x) missed", ks)
		}
	}

	if tr.Len() != 0 {
		t.Fatalf("Len() = %d after draining", tr.Len())
	}
	if it := tr.Iter(); it.Next() {
		t.Fatalf("drained tree still yields %x", it.Key())
	}
}

func TestTreeLongSharedPrefix(t *testing.T) {
	Convey("Given keys sharing a prefix beyond the inline capacity", t, func() {
		tr := art.New[string]()

		tr.Insert(key.FromString("abcdefghijklmnop"), "X")
		tr.Insert(key.FromString("abcdefghijklmnoq"), "Y")

		Convey("Then both keys resolve", func() {
			v, ok := tr.Get(key.FromString("abcdefghijklmnop"))
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "X")

			v, ok = tr.Get(key.FromString("abcdefghijklmnoq"))
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "Y")
		})

		Convey("Then a key differing past the optimistic bytes misses", func() {
			_, ok := tr.Get(key.FromString("abcdefghijklmnor"))
			So(ok, ShouldBeFalse)
		})
	})
}

// collectKeys drains an iterator into payload strings.
func collectKeys(it *art.Iterator[int]) []string {
	out := []string{}
	for it.Next() {
		out = append(out, string(key.Key(it.Key()).Payload()))
	}
	return out
}
