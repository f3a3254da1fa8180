package stats

// qualityCriteria is the number of equally weighted documentation criteria
const qualityCriteria = 6

// QualityScore scores the documentation completeness of a protocol in [0, 100],
// rounded to one decimal. A missing or malformed payload scores 0.
func QualityScore(payload Payload, payloadOK bool, photoCount int) float64 {
	if !payloadOK {
		return 0
	}

	met := 0
	if payload.Address.Complete() {
		met++
	}
	if len(payload.Rooms) > 0 {
		met++
	}
	if payload.HasMeterValue() {
		met++
	}
	if payload.KeyCount > 0 {
		met++
	}
	if photoCount > 0 {
		met++
	}
	if payload.PrivacyConsent {
		met++
	}

	return round1(float64(met) / qualityCriteria * 100)
}

// Score returns the quality score of the event's protocol
func (e Event) Score() float64 {
	return QualityScore(e.Payload, e.PayloadOK, e.PhotoCount)
}
