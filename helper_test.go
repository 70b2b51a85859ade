// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix_test

import (
	"code.hybscloud.com/apix"
	"code.hybscloud.com/kont"
)

// Order-list domain shared by the tests: requests encode to
// <Order UserId="..."/> and responses decode from
// <OrderList><Order Id="..."/>...</OrderList>.

type OrderQuery struct {
	UserID string
}

type OrderList struct {
	Orders []string
}

type UserQuery struct {
	UserID string
}

type User struct {
	Name string
}

var orderQueryEnc = apix.EncoderFunc[OrderQuery](func(q OrderQuery) apix.Node {
	return apix.El("Order", apix.Attr{Name: "UserId", Value: q.UserID})
})

var orderListEnc = apix.EncoderFunc[OrderList](func(l OrderList) apix.Node {
	n := apix.El("OrderList")
	for _, id := range l.Orders {
		n = n.With(apix.El("Order", apix.Attr{Name: "Id", Value: id}))
	}
	return n
})

var orderListDec = apix.DecoderFunc[OrderList, apix.Fault](func(n apix.Node) kont.Either[apix.Fault, OrderList] {
	if n.Name != "OrderList" {
		return kont.Left[apix.Fault, OrderList](apix.MalformedFault("getOrderList", "unexpected root "+n.Name))
	}
	list := OrderList{Orders: []string{}}
	for _, c := range n.Children {
		id, ok := c.Attr("Id")
		if c.Name != "Order" || !ok {
			return kont.Left[apix.Fault, OrderList](apix.MalformedFault("getOrderList", "unexpected child "+c.Name))
		}
		list.Orders = append(list.Orders, id)
	}
	return kont.Right[apix.Fault](list)
})

var userQueryEnc = apix.EncoderFunc[UserQuery](func(q UserQuery) apix.Node {
	return apix.El("User", apix.Attr{Name: "Id", Value: q.UserID})
})

var userDec = apix.DecoderFunc[User, apix.Fault](func(n apix.Node) kont.Either[apix.Fault, User] {
	name, ok := n.Attr("Name")
	if n.Name != "User" || !ok {
		return kont.Left[apix.Fault, User](apix.MalformedFault("getUser", "unexpected root "+n.Name))
	}
	return kont.Right[apix.Fault](User{Name: name})
})

// orderListHandler is the canonical invoker-side handler: echoes one
// order derived from the request's UserId attribute.
func orderListHandler(req apix.Node) kont.Either[apix.Fault, apix.Node] {
	uid, ok := req.Attr("UserId")
	if !ok {
		return kont.Left[apix.Fault, apix.Node](apix.MalformedFault("getOrderList", "missing UserId"))
	}
	return kont.Right[apix.Fault](
		apix.El("OrderList").With(apix.El("Order", apix.Attr{Name: "Id", Value: uid + "-1"})),
	)
}
