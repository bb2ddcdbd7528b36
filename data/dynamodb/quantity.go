package dynamodb

import (
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/jt0/units/catalog"
	"github.com/jt0/units/gomerr"
	"github.com/jt0/units/unit"
)

// QuantityCodec stores a unit.Quantity as a DynamoDB map attribute:
//
//	{"amount": {"N": "1.5"}, "unit": {"S": "L"}}
//
// The amount keeps its exact decimal digits. Units are written by symbol and resolved against the codec's registry
// when read back, so only quantities in a registered unit can be stored.
type QuantityCodec struct {
	registry *unit.Registry
}

// NewQuantityCodec returns a codec resolving units with registry, or with catalog.Default() if registry is nil.
func NewQuantityCodec(registry *unit.Registry) *QuantityCodec {
	if registry == nil {
		registry = catalog.Default()
	}
	return &QuantityCodec{registry}
}

type quantityItem struct {
	Amount *amount `dynamodbav:"amount"`
	Unit   string  `dynamodbav:"unit"`
}

type amount struct {
	decimal.Decimal
}

func (a amount) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: a.Decimal.String()}, nil
}

func (a *amount) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return gomerr.Unmarshal("amount", av, a).AddAttribute("Expected", "N")
	}

	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return gomerr.MalformedValue("amount", n.Value).Wrap(err)
	}
	a.Decimal = d

	return nil
}

func (c *QuantityCodec) Marshal(q unit.Quantity) (types.AttributeValue, gomerr.Gomerr) {
	u := q.Unit()
	if u.IsZero() {
		return nil, gomerr.Marshal("Quantity", q).AddAttribute(gomerr.DefaultReasonAttributeKey, "quantity has no unit")
	}

	if registered, ge := c.registry.Lookup(u.Symbol()); ge != nil {
		return nil, gomerr.Marshal("Quantity", q).Wrap(ge)
	} else if !registered.Equal(u) {
		return nil, gomerr.Marshal("Quantity", q).AddAttribute(gomerr.DefaultReasonAttributeKey, "symbol is registered to a unit of another family")
	}

	av, err := attributevalue.Marshal(quantityItem{&amount{q.Amount()}, u.Symbol()})
	if err != nil {
		return nil, gomerr.Marshal("Quantity", q).Wrap(err)
	}

	return av, nil
}

func (c *QuantityCodec) Unmarshal(av types.AttributeValue) (unit.Quantity, gomerr.Gomerr) {
	var item quantityItem
	if err := attributevalue.Unmarshal(av, &item); err != nil {
		return unit.Quantity{}, gomerr.Unmarshal("Quantity", av, &item).Wrap(err)
	}

	if item.Amount == nil || item.Unit == "" {
		return unit.Quantity{}, gomerr.Unmarshal("Quantity", av, &item).AddAttribute(gomerr.DefaultReasonAttributeKey, "both amount and unit are required")
	}

	u, ge := c.registry.Lookup(item.Unit)
	if ge != nil {
		return unit.Quantity{}, ge
	}

	return unit.NewQuantity(item.Amount.Decimal, u), nil
}

var defaultCodec = sync.OnceValue(func() *QuantityCodec {
	return NewQuantityCodec(nil)
})

// Quantity lets a unit.Quantity be a field of a struct marshaled with the attributevalue package. Units are
// resolved against catalog.Default().
type Quantity struct {
	unit.Quantity
}

func (q Quantity) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	av, ge := defaultCodec().Marshal(q.Quantity)
	if ge != nil {
		return nil, ge
	}
	return av, nil
}

func (q *Quantity) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	uq, ge := defaultCodec().Unmarshal(av)
	if ge != nil {
		return ge
	}
	q.Quantity = uq
	return nil
}
