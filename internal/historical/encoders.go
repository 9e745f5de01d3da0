package historical

import (
	"strconv"

	"github.com/jwang-trading/bondpipeline/internal/codec"
	"github.com/jwang-trading/bondpipeline/internal/execution"
	"github.com/jwang-trading/bondpipeline/internal/inquiry"
	"github.com/jwang-trading/bondpipeline/internal/position"
	"github.com/jwang-trading/bondpipeline/internal/risk"
	"github.com/jwang-trading/bondpipeline/internal/streaming"
	"github.com/jwang-trading/bondpipeline/internal/tradebooking"
)

// bookOrder is the fixed iteration order positions.txt renders per-book
// quantities in, so two runs over the same data produce byte-identical
// journals despite Position.PerBookQty being a map.
var bookOrder = []tradebooking.Book{tradebooking.TRSY1, tradebooking.TRSY2, tradebooking.TRSY3}

// EncodePosition renders "productId book1 qty1 book2 qty2 ...", one
// book/quantity pair per book that has ever carried a trade.
func EncodePosition(p position.Position) []string {
	fields := []string{p.ProductID()}
	for _, b := range bookOrder {
		qty, ok := p.PerBookQty[b.String()]
		if !ok {
			continue
		}
		fields = append(fields, b.String(), strconv.FormatInt(qty, 10))
	}
	return fields
}

// EncodeRisk renders "productId pv01 quantity".
func EncodeRisk(p risk.PV01) []string {
	return []string{p.ProductID(), p.Value.String(), strconv.FormatInt(p.Quantity, 10)}
}

// EncodeExecution renders
// "productId side orderId orderType price visibleQty hiddenQty parentOrderId isChild".
func EncodeExecution(e execution.ExecutionOrder) []string {
	price, err := codec.Encode(e.Price)
	if err != nil {
		price = e.Price.String()
	}
	return []string{
		e.ProductID(), e.Side.String(), e.OrderID, e.OrderType.String(), price,
		strconv.FormatInt(e.VisibleQty, 10), strconv.FormatInt(e.HiddenQty, 10),
		e.ParentOrderID, strconv.FormatBool(e.IsChild),
	}
}

// EncodeStreaming renders "productId bidPx bidVq bidHq BID offerPx offerVq offerHq OFFER".
func EncodeStreaming(p streaming.PriceStream) []string {
	bidPx, err := codec.Encode(p.BidOrder.Price)
	if err != nil {
		bidPx = p.BidOrder.Price.String()
	}
	offerPx, err := codec.Encode(p.OfferOrder.Price)
	if err != nil {
		offerPx = p.OfferOrder.Price.String()
	}
	return []string{
		p.ProductID(),
		bidPx, strconv.FormatInt(p.BidOrder.VisibleQty, 10), strconv.FormatInt(p.BidOrder.HiddenQty, 10), p.BidOrder.Side.String(),
		offerPx, strconv.FormatInt(p.OfferOrder.VisibleQty, 10), strconv.FormatInt(p.OfferOrder.HiddenQty, 10), p.OfferOrder.Side.String(),
	}
}

// EncodeInquiry renders "inquiryId productId side qty price state".
func EncodeInquiry(i inquiry.Inquiry) []string {
	price, err := codec.Encode(i.Price)
	if err != nil {
		price = i.Price.String()
	}
	return []string{i.InquiryID, i.ProductID(), i.Side.String(), strconv.FormatInt(i.Quantity, 10), price, i.State.String()}
}
