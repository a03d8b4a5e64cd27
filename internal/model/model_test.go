package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_DecodesStringAndNumberColumns(t *testing.T) {
	body := `[
		{"id_produk":"3","nama_produk":"Kopi","merk_produk":"Kapal Api","harga":"15000.50","stok":"7","gambar_produk":"gambar/kopi.jpg"},
		{"id_produk":4,"nama_produk":"Teh","merk_produk":"Sariwangi","harga":8000,"stok":0,"gambar_produk":""}
	]`

	var products []Product
	require.NoError(t, json.Unmarshal([]byte(body), &products))
	require.Len(t, products, 2)

	assert.Equal(t, FlexInt(3), products[0].ID)
	assert.Equal(t, FlexFloat(15000.5), products[0].Price)
	assert.Equal(t, FlexInt(7), products[0].Stock)
	assert.Equal(t, "gambar/kopi.jpg", products[0].Image)

	assert.Equal(t, FlexInt(4), products[1].ID)
	assert.Equal(t, FlexFloat(8000), products[1].Price)
	assert.Nil(t, products[1].Description)
}

func TestFlexInt_RejectsGarbage(t *testing.T) {
	var n FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
	assert.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.Equal(t, FlexInt(0), n)
}

func TestFlexFloat_String(t *testing.T) {
	assert.Equal(t, "15000", FlexFloat(15000).String())
	assert.Equal(t, "12.75", FlexFloat(12.75).String())
}

func TestUser_AcceptsIDOrIDUser(t *testing.T) {
	var a, b User
	require.NoError(t, json.Unmarshal([]byte(`{"id":"9","nama_user":"Budi","email":"budi@example.com","password":"hash","level":"2"}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"id_user":11,"nama_user":"Sari"}`), &b))

	assert.Equal(t, FlexInt(9), a.ID)
	assert.Equal(t, FlexInt(2), a.Level)
	assert.Empty(t, a.Password)
	assert.Equal(t, FlexInt(11), b.ID)
	assert.Equal(t, "Sari", b.Name)
}

func TestProductForm_Payload(t *testing.T) {
	form := ProductForm{Name: " Kopi ", Brand: "Kapal Api", Price: "15000", Stock: "0"}

	payload, err := form.Payload()
	require.NoError(t, err)
	assert.Equal(t, "Kopi", payload.Name)
	assert.Equal(t, 15000.0, payload.Price)
	assert.Equal(t, int64(0), payload.Stock)
	assert.Nil(t, payload.ID)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nama_produk":"Kopi","merk_produk":"Kapal Api","harga":15000,"stok":0}`, string(raw))
}

func TestProductForm_PayloadInvalidNumber(t *testing.T) {
	_, err := ProductForm{Name: "Kopi", Brand: "X", Price: "abc", Stock: "1"}.Payload()
	assert.Error(t, err)

	_, err = ProductForm{Name: "Kopi", Brand: "X", Price: "10", Stock: "1.5"}.Payload()
	assert.Error(t, err)
}

func TestProductFormFrom(t *testing.T) {
	form := ProductFormFrom(&Product{Name: "Kopi", Brand: "Kapal Api", Price: 15000, Stock: 12})
	assert.Equal(t, ProductForm{Name: "Kopi", Brand: "Kapal Api", Price: "15000", Stock: "12"}, form)
}

func TestUserForm_Payload(t *testing.T) {
	payload := UserForm{Name: "Budi", Email: "budi@example.com", Password: "rahasia123", Address: "Padang", Phone: "0812"}.Payload()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nama_user":"Budi","email":"budi@example.com","password":"rahasia123","alamat":"Padang","nomor_telp":"0812","level":2}`, string(raw))
}

func TestUserFormFrom_LeavesPasswordBlank(t *testing.T) {
	form := UserFormFrom(&User{Name: "Budi", Email: "budi@example.com", Password: "hash", Address: "Padang", Phone: "0812"})
	assert.Empty(t, form.Password)
	assert.Equal(t, "Budi", form.Name)
}
