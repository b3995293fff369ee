package err_multifile

this is not parsed
