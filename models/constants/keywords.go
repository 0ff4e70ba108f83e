package constants

// GetKeywords returns the allow-list used to decide whether an article
// belongs to a category at all.
func GetKeywords(category string) []string {
	switch category {
	case CategoryGold:
		return []string{
			"gold", "precious", "metals", "bullion", "mining", "miners",
			"copper", "silver", "commodity", "resources", "exploration",
			"discovery", "reserves", "production", "output", "market",
			"price", "investment", "safe", "haven", "inflation",
		}
	default:
		return []string{
			"bitcoin", "ethereum", "binance", "etf", "crypto", "cryptocurrency",
			"altcoin", "market", "bull", "bear", "trading", "btc", "eth",
			"blockchain", "defi", "nft", "coin", "digital", "mining",
			"wallet", "exchange", "price", "surge", "rally", "drop",
			"investment", "token", "decentralized", "web3",
		}
	}
}

// GetTrustedSources returns source-name substrings that let an article
// through even without a keyword hit.
func GetTrustedSources(category string) []string {
	switch category {
	case CategoryGold:
		return []string{"mining"}
	default:
		return []string{"coindesk", "cointelegraph", "decrypt"}
	}
}

// GetImportantTerms returns terms boosting the relevance score when they
// appear anywhere in the title or summary.
func GetImportantTerms() map[string]float64 {
	return map[string]float64{
		"breaking":   3.0,
		"urgent":     3.0,
		"alert":      2.5,
		"crash":      2.5,
		"ban":        2.5,
		"surge":      2.0,
		"rally":      2.0,
		"record":     2.0,
		"regulation": 2.0,
		"approval":   2.0,
		"high":       1.5,
		"low":        1.5,
	}
}
