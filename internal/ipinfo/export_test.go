package ipinfo

// QuickLookupTimeout exposes quickLookupTimeout to the external test package.
const QuickLookupTimeout = quickLookupTimeout
