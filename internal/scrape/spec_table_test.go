package scrape

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/catalog-service/internal/entity"
)

func TestSpecModels_TwoCards(t *testing.T) {
	html := `<section id="moshakhasat"><div class="elementor-row spec-models">` +
		`<div class="spec-model-card"><div class="inner">` +
		`<p>MB-100</p>` +
		`<p><span>Power:</span> <strong>5 kW</strong></p>` +
		`<p>Voltage <b>220V</b></p>` +
		`</div></div>` +
		`<div class="spec-model-card">` +
		`<p>MB-200</p>` +
		`<p><span>Power</span><strong>7.5&nbsp;kW</strong></p>` +
		`<p>Trays &ndash; <strong>10</strong></p>` +
		`</div>` +
		`</div></section>`

	models := SpecModels(html)
	require.Len(t, models, 2)

	assert.Equal(t, entity.SpecModel{
		Name: "MB-100",
		Specs: []entity.SpecPair{
			{Label: "Power", Value: "5 kW"},
			{Label: "Voltage", Value: "220V"},
		},
	}, models[0])
	assert.Equal(t, "MB-200", models[1].Name)
	assert.Equal(t, []entity.SpecPair{
		{Label: "Power", Value: "7.5 kW"},
		{Label: "Trays", Value: "10"},
	}, models[1].Specs)
}

func TestSpecModels_DropsEmptyValues(t *testing.T) {
	html := `<div class="spec-models"><div class="spec-model-card">` +
		`<p>MB-300</p><p>Weight <strong> </strong></p><p>No emphasis here</p>` +
		`<p><strong><span>380V</span></strong></p>` +
		`</div></div>`

	models := SpecModels(html)
	require.Len(t, models, 1)
	assert.Equal(t, []entity.SpecPair{{Label: "", Value: "380V"}}, models[0].Specs)
}

func TestSpecModels_NoRow(t *testing.T) {
	assert.Nil(t, SpecModels(`<div class="spec-model-card"><p>x</p></div>`))
}

func TestSpecModels_NameOnlyCardHasEmptySpecs(t *testing.T) {
	models := SpecModels(`<div class="spec-models"><div class="spec-model-card"><p>MB-1</p></div></div>`)
	require.Len(t, models, 1)

	out, err := json.Marshal(models)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"MB-1","specs":[]}]`, string(out))
}
