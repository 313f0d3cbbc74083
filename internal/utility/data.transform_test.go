// Package utility - Test parse transform tag và convert giá trị DTO sang model.
package utility

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,optional,map=CustomerID")
	if err != nil {
		t.Fatalf("ParseTransformTag lỗi: %v", err)
	}
	if config.Type != "str_objectid" {
		t.Errorf("Type = %q, muốn %q", config.Type, "str_objectid")
	}
	if !config.Optional {
		t.Error("Optional phải là true")
	}
	if config.MapTo != "CustomerID" {
		t.Errorf("MapTo = %q, muốn %q", config.MapTo, "CustomerID")
	}
}

func TestParseTransformTag_FormatVaDefault(t *testing.T) {
	config, err := ParseTransformTag("str_time,format=2006-01-02,default=2024-01-01")
	if err != nil {
		t.Fatalf("ParseTransformTag lỗi: %v", err)
	}
	if config.Format != "2006-01-02" {
		t.Errorf("Format = %q, muốn %q", config.Format, "2006-01-02")
	}
	if config.Default != "2024-01-01" {
		t.Errorf("Default = %q, muốn %q", config.Default, "2024-01-01")
	}
}

func TestTransformFieldValue_StrObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	config, _ := ParseTransformTag("str_objectid")

	got, err := TransformFieldValue(id.Hex(), config, reflect.TypeOf(primitive.ObjectID{}))
	if err != nil {
		t.Fatalf("TransformFieldValue lỗi: %v", err)
	}
	if got.(primitive.ObjectID) != id {
		t.Errorf("ObjectID = %v, muốn %v", got, id)
	}
}

func TestTransformFieldValue_StrObjectIDKhongHopLe(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid")
	_, err := TransformFieldValue("not-a-hex", config, reflect.TypeOf(primitive.ObjectID{}))
	if err == nil {
		t.Error("hex không hợp lệ phải trả về lỗi")
	}
}

func TestTransformFieldValue_OptionalRong(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid,optional")
	got, err := TransformFieldValue("", config, reflect.TypeOf(primitive.ObjectID{}))
	if err != nil {
		t.Fatalf("giá trị rỗng với optional không được lỗi: %v", err)
	}
	if got != nil {
		t.Errorf("giá trị rỗng với optional phải trả về nil, got %v", got)
	}
}

func TestTransformFieldValue_RequiredRong(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid,required")
	if _, err := TransformFieldValue("", config, reflect.TypeOf(primitive.ObjectID{})); err == nil {
		t.Error("giá trị rỗng với required phải trả về lỗi")
	}
}

func TestTransformFieldValue_StrInt64VaStrBool(t *testing.T) {
	intConfig, _ := ParseTransformTag("str_int64")
	got, err := TransformFieldValue("1234", intConfig, reflect.TypeOf(int64(0)))
	if err != nil {
		t.Fatalf("str_int64 lỗi: %v", err)
	}
	if got.(int64) != 1234 {
		t.Errorf("int64 = %v, muốn 1234", got)
	}

	boolConfig, _ := ParseTransformTag("str_bool")
	got, err = TransformFieldValue("true", boolConfig, reflect.TypeOf(false))
	if err != nil {
		t.Fatalf("str_bool lỗi: %v", err)
	}
	if got.(bool) != true {
		t.Errorf("bool = %v, muốn true", got)
	}
}
