package field

// This file defines the two fields used by the jubjub curve.

// FqModulus describes the base field GF(q), with:
//   q = 0x73EDA753299D7D483339D80809A1D80553BDA402FFFE5BFEFFFFFFFF00000001
// This is also the scalar field of the BLS12-381 curve.
var FqModulus = Modulus{
	M: [4]uint64{
		0xFFFFFFFF00000001, 0x53BDA402FFFE5BFE,
		0x3339D80809A1D805, 0x73EDA753299D7D48},
	M0i: 0xFFFFFFFEFFFFFFFF,
	R2: [4]uint64{
		0xC999E990F3F29C6D, 0x2B6CEDCB87925C23,
		0x05D314967254398F, 0x0748D9D99F59FF11},
	R3: [4]uint64{
		0xC62C1807439B73AF, 0x1B3E0D188CF06990,
		0x73D13C71C7B5F418, 0x6E2A5BB9C8DB33E9},
}

// FrModulus describes the scalar field GF(r), where r is the order of
// the prime-order subgroup of the jubjub curve:
//   r = 0x0E7DB4EA6533AFA906673B0101343B00A6682093CCC81082D0970E5ED6F72CB7
var FrModulus = Modulus{
	M: [4]uint64{
		0xD0970E5ED6F72CB7, 0xA6682093CCC81082,
		0x06673B0101343B00, 0x0E7DB4EA6533AFA9},
	M0i: 0x1BA3A358EF788EF9,
	R2: [4]uint64{
		0x67719AA495E57731, 0x51B0CEF09CE3FC26,
		0x69DAB7FAC026E9A5, 0x04F6547B8D127688},
	R3: [4]uint64{
		0xE0D6C6563D830544, 0x323E3883598D0F85,
		0xF0FEA3004C2E2BA8, 0x05874F84946737EC},
}
