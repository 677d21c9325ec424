package wine

// AttributeInfo is one data-dictionary entry: what a column measures and in
// which unit, per the UCI wine-quality documentation.
type AttributeInfo struct {
	Attr        Attribute
	Unit        string
	Description string
}

var dictionary = [NumAttributes]AttributeInfo{
	{FixedAcidity, "g(tartaric acid)/dm³", "non-volatile acids that do not evaporate readily"},
	{VolatileAcidity, "g(acetic acid)/dm³", "acetic acid content; high levels give a vinegar taste"},
	{CitricAcid, "g/dm³", "adds freshness and flavor in small quantities"},
	{ResidualSugar, "g/dm³", "sugar remaining after fermentation stops"},
	{Chlorides, "g(sodium chloride)/dm³", "salt content"},
	{FreeSulfurDioxide, "mg/dm³", "free SO₂; prevents microbial growth and oxidation"},
	{TotalSulfurDioxide, "mg/dm³", "free plus bound SO₂"},
	{Density, "g/cm³", "density relative to water; depends on alcohol and sugar"},
	{PH, "", "acidity on the 0–14 scale; most wines sit between 3 and 4"},
	{Sulphates, "g(potassium sulphate)/dm³", "additive contributing to SO₂ levels"},
	{Alcohol, "% vol", "alcohol content"},
}

// Dictionary returns the data dictionary in schema order.
func Dictionary() []AttributeInfo {
	out := make([]AttributeInfo, NumAttributes)
	copy(out, dictionary[:])
	return out
}

// Info returns the dictionary entry for a single attribute.
func (a Attribute) Info() AttributeInfo {
	if a < 0 || int(a) >= NumAttributes {
		return AttributeInfo{Attr: a}
	}
	return dictionary[a]
}
