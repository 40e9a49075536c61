package salesorder

import (
	"encoding/json"
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
)

const decimalPattern = `^-?[0-9]+(\.[0-9]+)?$`

var (
	decimalType     = reflect.TypeOf(decimal.Decimal{})
	nullDecimalType = reflect.TypeOf(decimal.NullDecimal{})
)

// DraftSchema JSON Schema del pedido en composición, para la validación del formulario.
func DraftSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    mapDecimal,
	}
	schema := reflector.Reflect(&dto.DraftOrderRequest{})
	schema.Title = "Pedido de venta en composición"
	return json.MarshalIndent(schema, "", "  ")
}

var draftSchema = sync.OnceValues(DraftSchema)

// Schema JSON Schema del pedido; se calcula una vez por proceso.
func (uc *ComposeUseCase) Schema() ([]byte, error) {
	return draftSchema()
}

// mapDecimal: decimal.Decimal se serializa como string y acepta también números.
func mapDecimal(t reflect.Type) *jsonschema.Schema {
	switch t {
	case decimalType:
		return &jsonschema.Schema{OneOf: []*jsonschema.Schema{
			{Type: "string", Pattern: decimalPattern},
			{Type: "number"},
		}}
	case nullDecimalType:
		return &jsonschema.Schema{OneOf: []*jsonschema.Schema{
			{Type: "string", Pattern: decimalPattern},
			{Type: "number"},
			{Type: "null"},
		}}
	default:
		return nil
	}
}
