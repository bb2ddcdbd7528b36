package dynamodb_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/jt0/units/_test/assert"
	"github.com/jt0/units/data/dynamodb"
	"github.com/jt0/units/gomerr"
	"github.com/jt0/units/unit"
	"github.com/jt0/units/unit/mass"
	"github.com/jt0/units/unit/volume"
)

func TestQuantityCodecRoundTrip(t *testing.T) {
	codec := dynamodb.NewQuantityCodec(nil)

	tests := []struct {
		name   string
		q      unit.Quantity
		amount string
		symbol string
	}{
		{"Litres", volume.Litres(decimal.RequireFromString("1.5")), "1.5", "L"},
		{"Millilitres", volume.Millilitres(decimal.NewFromInt(250)), "250", "mL"},
		{"Grains", mass.Grains(decimal.RequireFromString("0.000123456789012345678")), "0.000123456789012345678", "gr"},
		{"NegativePounds", mass.Pounds(decimal.NewFromInt(-3)), "-3", "lb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			av, ge := codec.Marshal(tt.q)
			assert.Success(t, ge)

			m, ok := av.(*types.AttributeValueMemberM)
			assert.True(t, ok, "expected a map attribute, got %T", av)
			assert.Equals(t, &types.AttributeValueMemberN{Value: tt.amount}, m.Value["amount"])
			assert.Equals(t, &types.AttributeValueMemberS{Value: tt.symbol}, m.Value["unit"])

			q, ge := codec.Unmarshal(av)
			assert.Success(t, ge)
			assert.True(t, q.Unit().Equal(tt.q.Unit()))
			assert.True(t, q.Amount().Equal(tt.q.Amount()), "expected %s, got %s", tt.q.Amount(), q.Amount())
		})
	}
}

func TestQuantityCodecUsesItsRegistry(t *testing.T) {
	r, ge := unit.NewRegistry(volume.Units()...)
	assert.Success(t, ge)
	codec := dynamodb.NewQuantityCodec(r)

	_, ge = codec.Marshal(mass.Kilograms(decimal.NewFromInt(1)))
	assert.ErrorType(t, ge, new(gomerr.MarshalError))
	assert.ErrorType(t, ge, new(unit.UnrecognizedUnitError))

	_, ge = codec.Unmarshal(item("1", "kg"))
	assert.ErrorType(t, ge, new(unit.UnrecognizedUnitError))

	impostor := unit.NewQuantity(decimal.NewFromInt(1), unit.New(unit.Mass, "litre", "L", decimal.NewFromInt(1)))
	_, ge = codec.Marshal(impostor)
	assert.ErrorType(t, ge, new(gomerr.MarshalError))
}

func TestQuantityCodecMarshalWithoutUnit(t *testing.T) {
	_, ge := dynamodb.NewQuantityCodec(nil).Marshal(unit.Quantity{})
	assert.ErrorType(t, ge, new(gomerr.MarshalError))
}

func TestQuantityCodecUnmarshalFailures(t *testing.T) {
	tests := []struct {
		name    string
		av      types.AttributeValue
		errType error
	}{
		{"NotAMap", &types.AttributeValueMemberS{Value: "1.5 L"}, new(gomerr.UnmarshalError)},
		{"MissingAmount", &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"unit": &types.AttributeValueMemberS{Value: "L"},
		}}, new(gomerr.UnmarshalError)},
		{"MissingUnit", &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"amount": &types.AttributeValueMemberN{Value: "1"},
		}}, new(gomerr.UnmarshalError)},
		{"AmountIsAString", &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"amount": &types.AttributeValueMemberS{Value: "1"},
			"unit":   &types.AttributeValueMemberS{Value: "L"},
		}}, new(gomerr.UnmarshalError)},
		{"MalformedAmount", item("1.2.3", "L"), new(gomerr.UnmarshalError)},
		{"UnknownUnit", item("1", "gal"), new(unit.UnrecognizedUnitError)},
	}
	codec := dynamodb.NewQuantityCodec(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ge := codec.Unmarshal(tt.av)
			assert.ErrorType(t, ge, tt.errType)
		})
	}
}

type container struct {
	Id     string            `dynamodbav:"id"`
	Volume dynamodb.Quantity `dynamodbav:"volume"`
	Weight dynamodb.Quantity `dynamodbav:"weight"`
}

func TestQuantityAsItemField(t *testing.T) {
	c := container{
		Id:     "tank-7",
		Volume: dynamodb.Quantity{Quantity: volume.Litres(decimal.NewFromInt(20))},
		Weight: dynamodb.Quantity{Quantity: mass.Stones(decimal.RequireFromString("3.5"))},
	}

	m, err := attributevalue.MarshalMap(c)
	assert.Success(t, err)
	assert.Equals(t, &types.AttributeValueMemberS{Value: "tank-7"}, m["id"])

	var got container
	assert.Success(t, attributevalue.UnmarshalMap(m, &got))
	assert.Equals(t, c.Id, got.Id)
	if !cmp.Equal(c.Volume.Quantity, got.Volume.Quantity) || !cmp.Equal(c.Weight.Quantity, got.Weight.Quantity) {
		t.Errorf("round trip mismatch: %v != %v", c, got)
	}

	m["weight"] = item("3.5", "furlong")
	err = attributevalue.UnmarshalMap(m, &got)
	assert.Error(t, err)
}

func item(amount, symbol string) types.AttributeValue {
	return &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
		"amount": &types.AttributeValueMemberN{Value: amount},
		"unit":   &types.AttributeValueMemberS{Value: symbol},
	}}
}
