package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNode48(t *testing.T) {
	Convey("Given a Node48", t, func() {
		n := NewNode48[int]()

		Convey("When checking basic properties", func() {
			So(n.Type(), ShouldEqual, TypeNode48)
			So(n.Full(), ShouldBeFalse)
			So(n.Minimum(), ShouldBeNil)
			So(n.Maximum(), ShouldBeNil)
		})

		Convey("When adding children in descending byte order", func() {
			for i := 0; i < 8; i++ {
				b := byte(0xe0 - i*0x20)
				n.AddChild(b, NewLeaf([]byte{b}, int(b)))
			}

			Convey("Then the slot table uses 1-based indices", func() {
				So(n.NumChildren, ShouldEqual, 8)
				So(n.Keys[0xe0], ShouldEqual, byte(1))
				So(n.Keys[0x00], ShouldEqual, byte(8))
				So(n.Keys[0x10], ShouldEqual, byte(0))
			})

			Convey("Then FindChild goes through the table", func() {
				So(n.FindChild(0x40), ShouldNotBeNil)
				So((*n.FindChild(0x40)).Minimum().Value, ShouldEqual, 0x40)
				So(n.FindChild(0x41), ShouldBeNil)
			})

			Convey("Then Minimum and Maximum use the occupancy bitset", func() {
				So(n.Minimum().Value, ShouldEqual, 0x00)
				So(n.Maximum().Value, ShouldEqual, 0xe0)
			})
		})

		Convey("When removing a child", func() {
			n.AddChild(0x10, NewLeaf([]byte{0x10}, 1))
			n.AddChild(0x20, NewLeaf([]byte{0x20}, 2))

			n.RemoveChild(0x10)

			So(n.NumChildren, ShouldEqual, 1)
			So(n.Keys[0x10], ShouldEqual, byte(0))
			So(n.FindChild(0x10), ShouldBeNil)
			So(n.Occupied.Test(0x10), ShouldBeFalse)

			Convey("And the freed slot is reused", func() {
				n.AddChild(0x30, NewLeaf([]byte{0x30}, 3))
				So(n.Keys[0x30], ShouldEqual, byte(1))
			})
		})

		Convey("When filled to capacity", func() {
			for i := 0; i < 48; i++ {
				b := byte(i * 5)
				n.AddChild(b, NewLeaf([]byte{b}, i))
			}

			So(n.Full(), ShouldBeTrue)

			Convey("Then Grow produces an equivalent Node256", func() {
				g := n.Grow()

				So(g.Type(), ShouldEqual, TypeNode256)
				So(g.Meta().NumChildren, ShouldEqual, 48)
				So(g.Minimum().Value, ShouldEqual, 0)
				So(g.Maximum().Value, ShouldEqual, 47)
			})
		})

		Convey("When occupancy drops below 17", func() {
			for i := 0; i < 17; i++ {
				b := byte(0xff - i*3)
				n.AddChild(b, NewLeaf([]byte{b}, i))
			}

			So(n.Shrink(), ShouldEqual, Node[int](n))

			n.RemoveChild(0xff)
			s := n.Shrink()

			Convey("Then Shrink demotes to a sorted Node16", func() {
				So(s.Type(), ShouldEqual, TypeNode16)
				So(s.Meta().NumChildren, ShouldEqual, 16)

				n16 := s.(*Node16[int])
				for i := 1; i < n16.NumChildren; i++ {
					So(n16.Keys[i-1], ShouldBeLessThan, n16.Keys[i])
				}
			})
		})
	})
}
