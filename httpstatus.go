package storage

var httpStatusMap = map[int]string{
	400: "Bad Request. Malformed resource path.",
	401: "Unauthorized. The bucket is not public.",
	403: "Forbidden. The object exists but cannot be read.",
	404: "Not Found. No json document at this path.\n" +
		"Check the endpoint, the scope ids (website, marketplace, list) and the locale.",
	405: "Invalid HTTP method. The storage service only serves GET.",
	406: "Unsupported 'Accept' type. Documents are served as application/json.",
	429: "Rate limit exceeded.",
	500: "Internal Server Error",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
}
