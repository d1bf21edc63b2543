// storage: a client for the monthly cloud json storage.
//
// Every document on the storage is addressed by a path:
//
//	{storage url}/websites/{website id}/{endpoint}/{id}.json
//	{storage url}/websites/{website id}/{endpoint}/{locale}.json
//	{storage url}/{root endpoint}/{id}.json
//
// Instructions:
//
//  1. Construct a builder with [New] or [NewFromConfig].
//     An empty storage url falls back to the MONTHLY_CLOUD_STORAGE_URL environment variable.
//
//  2. Set the scope through setters. (".Set[...](...)")
//
//     - [Storage.SetWebsite] adds the "/websites/{id}" prefix, unless the endpoint starts with "/".
//
//     - [Storage.SetMarketplace], [Storage.SetList] are needed by some finders.
//
//     - [Storage.SetEndpoint] resets the id: parameters never leak from one endpoint to the next.
//
//  3. Fetch.
//
//     - [Storage.Get], [Storage.Find], or the generic [Fetch], [FetchID].
//
//     - Finders: [Storage.GetRoutes], [Storage.GetMenus], [Storage.FindContent],
//     [Storage.FindListing], [Storage.GetLocation], [Storage.FindProfile].
//     A finder missing its scope id returns a [*ConfigError] without making a request.
//
//     - Non-2xx answers are returned as [*HTTPError].
//
// [Storage.BuildURL] returns the url without fetching it.
package storage
