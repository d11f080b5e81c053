package config

// Nifty50 returns the default NSE symbol universe in Yahoo ticker form.
func Nifty50() []string {
	return []string{
		"RELIANCE.NS", "TCS.NS", "INFY.NS", "HDFCBANK.NS", "ICICIBANK.NS",
		"HINDUNILVR.NS", "SBIN.NS", "BHARTIARTL.NS", "ADANIENT.NS", "HDFC.NS",
		"KOTAKBANK.NS", "ITC.NS", "LT.NS", "WIPRO.NS", "TITAN.NS",
		"ASIANPAINT.NS", "ULTRACEMCO.NS", "AXISBANK.NS", "DMART.NS", "MARUTI.NS",
		"SUNPHARMA.NS", "TECHM.NS", "HCLTECH.NS", "NTPC.NS", "POWERGRID.NS",
		"JSWSTEEL.NS", "TATAMOTORS.NS", "ONGC.NS", "COALINDIA.NS", "ADANIPORTS.NS",
		"GRASIM.NS", "BAJAJFINSV.NS", "BAJFINANCE.NS", "M&M.NS", "EICHERMOT.NS",
		"BPCL.NS", "DIVISLAB.NS", "SHREECEM.NS", "NESTLEIND.NS", "CIPLA.NS",
		"SBILIFE.NS", "HDFCLIFE.NS", "HEROMOTOCO.NS", "BRITANNIA.NS", "TATASTEEL.NS",
		"UPL.NS", "INDUSINDBK.NS", "DRREDDY.NS", "APOLLOHOSP.NS", "BAJAJ-AUTO.NS",
	}
}
